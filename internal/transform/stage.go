package transform

import (
	"context"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/content"
)

// Stage enriches one document. It may mutate doc.Tree and doc.Meta.
type Stage interface {
	Name() string
	Transform(ctx context.Context, bctx *buildctx.Context, doc *content.Document) error
}

// StageFunc adapts a function to the Stage interface.
type StageFunc struct {
	StageName string
	Fn        func(ctx context.Context, bctx *buildctx.Context, doc *content.Document) error
}

func (s StageFunc) Name() string { return s.StageName }

func (s StageFunc) Transform(ctx context.Context, bctx *buildctx.Context, doc *content.Document) error {
	return s.Fn(ctx, bctx, doc)
}
