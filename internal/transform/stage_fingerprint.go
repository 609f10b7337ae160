package transform

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/frontmatter"
	"git.home.luguber.info/inful/docgarden/internal/logfields"
	"github.com/inful/mdfp"
	"github.com/spf13/cast"
)

// StageFingerprint is the name of the fingerprint stage.
const StageFingerprint = "fingerprint"

// Keys excluded from the hashed frontmatter: they change without the content changing.
var fingerprintExcluded = []string{mdfp.FingerprintField, "lastmod", "uid", "aliases"}

// FingerprintStage stores the content fingerprint of frontmatter and body in
// Meta.Fingerprint. A stale fingerprint declared in frontmatter is logged.
type FingerprintStage struct{}

func (*FingerprintStage) Name() string { return StageFingerprint }

func (*FingerprintStage) Transform(_ context.Context, bctx *buildctx.Context, doc *content.Document) error {
	fm, err := frontmatter.Canonical(doc.Frontmatter, fingerprintExcluded...)
	if err != nil {
		return fmt.Errorf("serialize frontmatter: %w", err)
	}
	doc.Meta.Fingerprint = mdfp.CalculateFingerprintFromParts(fm, string(doc.Source))

	if declared := cast.ToString(doc.Frontmatter[mdfp.FingerprintField]); declared != "" && declared != doc.Meta.Fingerprint {
		bctx.Log().Debug("Declared fingerprint is stale",
			logfields.File(doc.FilePath),
			logfields.RawValue(declared))
	}
	return nil
}
