//go:build unit

package engine

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/adiepenbrock/latex-scripts/internal/base"
	"github.com/adiepenbrock/latex-scripts/pkg/config"
	"github.com/adiepenbrock/latex-scripts/pkg/discovery"
	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/fs"
	"github.com/adiepenbrock/latex-scripts/pkg/logger"
	"github.com/adiepenbrock/latex-scripts/pkg/usage"
)

const acroDefs = "\\acro{api}[API]{Application Programming Interface}\n" +
	"\n" +
	"\\acro{cpu}[CPU]{Central Processing Unit}\n" +
	"\n" +
	"\\acro{xml}[XML]{Extensible Markup Language}\n"

// newTestEngine builds an engine over mocked collaborators and the
// default configuration.
func newTestEngine(t *testing.T, format entry.Format, grammar usage.Grammar) (*Engine, *fs.MockFS, *discovery.MockDiscoverer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockFS := fs.NewMockFS(ctrl)
	mockDisc := discovery.NewMockDiscoverer(ctrl)

	b := base.NewBase(base.NewBaseParams{
		FS:     mockFS,
		Config: config.NewManager("").DefaultConfig(),
		Logger: logger.NewNoopLogger(),
	})

	e := New(Params{Base: b, Format: format, Grammar: grammar})
	e.disc = mockDisc
	return e, mockFS, mockDisc
}

func keysOf(entries []entry.Entry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}
