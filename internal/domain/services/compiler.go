package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/ports"
)

// supportedImageExts are the formats an image reference may carry. Anything
// else is reported and omitted.
var supportedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".svg": true, ".avif": true,
}

// GraphCompiler normalizes entity records into linked-data graph nodes,
// hydrating name-valued references into typed, identified links.
type GraphCompiler struct {
	bc *BuildContext
}

// NewGraphCompiler creates a new graph compiler.
func NewGraphCompiler(bc *BuildContext) *GraphCompiler {
	return &GraphCompiler{bc: bc}
}

// Hydrate compiles a record into its graph node. Hydration is deterministic:
// the same record yields the same node id and content on every call within a
// build. Unresolved references and unconfigured types degrade gracefully and
// raise advisories; only store failures other than a missed lookup are
// returned as errors.
func (c *GraphCompiler) Hydrate(ctx context.Context, rec *entities.Record) (*entities.GraphNode, error) {
	node := &entities.GraphNode{
		ID:               c.nodeID(rec),
		Type:             c.resolveType(rec.Type, rec.Name),
		Name:             rec.Name,
		Properties:       make(map[string]any, len(rec.Properties)),
		MainEntityOfPage: c.pageURL(rec),
	}
	for _, key := range sortedKeys(rec.Properties) {
		hydrated, err := c.hydrateValue(ctx, rec.Properties[key])
		if err != nil {
			return nil, fmt.Errorf("hydrating %s.%s: %w", rec.Name, key, err)
		}
		node.Properties[key] = hydrated
	}
	return node, nil
}

// nodeID derives the graph identifier for a record. An explicit id on the
// record always wins; otherwise the id is the record's page URL.
func (c *GraphCompiler) nodeID(rec *entities.Record) string {
	if rec.ID != "" {
		return rec.ID
	}
	return c.pageURL(rec)
}

// pageURL derives the record's page URL from the site URL, the type's
// collection and the slugified name. An unconfigured type falls back to the
// raw tag as the collection, so the id and mainEntityOfPage always agree.
func (c *GraphCompiler) pageURL(rec *entities.Record) string {
	collection := rec.Type
	if info, ok := c.bc.Registry.Resolve(rec.Type); ok {
		collection = info.Collection
	}
	return c.bc.PageURL(collection, rec.Name)
}

// resolveType maps a raw type tag through the registry. An unconfigured tag
// passes through unchanged with an advisory; it is never an error here.
func (c *GraphCompiler) resolveType(tag, subject string) string {
	if info, ok := c.bc.Registry.Resolve(tag); ok {
		return info.GraphType
	}
	c.bc.report(entities.AdvisoryUnconfiguredType, subject,
		fmt.Sprintf("type %q has no registry entry", tag))
	return tag
}

func (c *GraphCompiler) hydrateValue(ctx context.Context, v entities.PropertyValue) (any, error) {
	switch v.Kind {
	case entities.KindScalar:
		return v.Scalar, nil
	case entities.KindReference:
		return c.hydrateRef(ctx, v.Ref)
	case entities.KindObject:
		return c.hydrateObject(ctx, v.Object)
	case entities.KindList:
		return c.hydrateList(ctx, v.List)
	default:
		return nil, fmt.Errorf("unknown value kind %d", v.Kind)
	}
}

// hydrateRef resolves a name-valued reference into a link object. An id or
// type already present on the reference is kept as-is; hydration never
// overwrites a pre-existing identifier.
func (c *GraphCompiler) hydrateRef(ctx context.Context, ref *entities.RecordRef) (map[string]any, error) {
	out := map[string]any{entities.KeyName: ref.Name}
	if ref.ID != "" {
		out[entities.KeyID] = ref.ID
	}
	if ref.Type != "" {
		out[entities.KeyType] = c.resolveType(ref.Type, ref.Name)
	}
	if ref.Image != "" {
		out[entities.KeyImage] = ref.Image
	}
	for _, key := range sortedKeys(ref.Extra) {
		hydrated, err := c.hydrateValue(ctx, ref.Extra[key])
		if err != nil {
			return nil, err
		}
		out[key] = hydrated
	}

	rec, err := c.bc.Store.FindByName(ctx, ref.Name)
	if errors.Is(err, ports.ErrRecordNotFound) {
		// Degrade to a name-only link.
		c.bc.report(entities.AdvisoryUnresolvedReference, ref.Name,
			"reference does not match any record")
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", ref.Name, err)
	}

	if _, ok := out[entities.KeyID]; !ok {
		out[entities.KeyID] = c.nodeID(rec)
	}
	if _, ok := out[entities.KeyType]; !ok {
		out[entities.KeyType] = c.resolveType(rec.Type, rec.Name)
	}
	c.attachImage(out, rec)
	return out, nil
}

// attachImage copies the referenced record's image onto the link when the
// record resolves to an image type.
func (c *GraphCompiler) attachImage(out map[string]any, rec *entities.Record) {
	info, ok := c.bc.Registry.Resolve(rec.Type)
	if !ok || info.GraphType != entities.ImageObjectType {
		return
	}
	if _, ok := out[entities.KeyImage]; ok {
		return
	}
	prop, ok := rec.Properties[entities.KeyImage]
	src, isString := prop.Scalar.(string)
	if !ok || prop.Kind != entities.KindScalar || !isString || src == "" {
		c.bc.report(entities.AdvisoryMissingImageRecord, rec.Name,
			"image record has no image property")
		return
	}
	if !supportedImageExts[strings.ToLower(path.Ext(src))] {
		c.bc.report(entities.AdvisoryUnsupportedImageFormat, rec.Name,
			fmt.Sprintf("unsupported image format %q", path.Ext(src)))
		return
	}
	out[entities.KeyImage] = src
}

// hydrateObject recursively hydrates a nested non-reference object. Scalar
// "id" and "type" keys are renamed to their graph forms.
func (c *GraphCompiler) hydrateObject(ctx context.Context, obj map[string]entities.PropertyValue) (map[string]any, error) {
	out := make(map[string]any, len(obj))
	for _, key := range sortedKeys(obj) {
		v := obj[key]
		if v.Kind == entities.KindScalar {
			if s, ok := v.Scalar.(string); ok {
				switch key {
				case "id":
					out[entities.KeyID] = s
					continue
				case "type":
					out[entities.KeyType] = c.resolveType(s, "")
					continue
				}
			}
		}
		hydrated, err := c.hydrateValue(ctx, v)
		if err != nil {
			return nil, err
		}
		out[key] = hydrated
	}
	return out, nil
}

// hydrateList flattens a list property into plain hydrated values. Scalars
// and references pass through whole; a non-reference object element
// collapses to its hydrated property values, discarding the element's own
// keys. An element with several properties therefore yields a value-list,
// not a mapping.
func (c *GraphCompiler) hydrateList(ctx context.Context, items []entities.PropertyValue) ([]any, error) {
	out := make([]any, 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case entities.KindScalar:
			out = append(out, item.Scalar)
		case entities.KindReference:
			link, err := c.hydrateRef(ctx, item.Ref)
			if err != nil {
				return nil, err
			}
			out = append(out, link)
		case entities.KindList:
			sub, err := c.hydrateList(ctx, item.List)
			if err != nil {
				return nil, err
			}
			out = append(out, sub)
		case entities.KindObject:
			m, err := c.hydrateObject(ctx, item.Object)
			if err != nil {
				return nil, err
			}
			vals := make([]any, 0, len(m))
			for _, key := range sortedKeys(m) {
				vals = append(vals, m[key])
			}
			if len(vals) == 1 {
				out = append(out, vals[0])
				continue
			}
			out = append(out, vals)
		}
	}
	return out, nil
}
