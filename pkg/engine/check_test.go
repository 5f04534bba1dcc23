//go:build unit

package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiepenbrock/latex-scripts/pkg/acronyms"
)

func TestEngine_Check_Directory(t *testing.T) {
	e, mockFS, mockDisc := newTestEngine(t, acronyms.NewFormat(), acronyms.NewGrammar())

	mockFS.EXPECT().Exists("acronyms.tex").Return(true, nil)
	mockFS.EXPECT().ReadFile("acronyms.tex").Return([]byte(acroDefs), nil)
	mockDisc.EXPECT().Discover("docs", true).Return([]string{"docs/ch1.tex", "docs/ch2.tex"}, nil)
	mockFS.EXPECT().ReadFile("docs/ch1.tex").Return([]byte("We use an \\ac{api} here.\n"), nil)
	mockFS.EXPECT().ReadFile("docs/ch2.tex").Return([]byte("Data arrives as \\ac{json}.\n"), nil)

	report, err := e.Check(CheckParams{
		DefinitionFile: "acronyms.tex",
		Directory:      "docs",
		Recursive:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "acronyms.tex", report.DefinitionFile)
	assert.Equal(t, []string{"docs/ch1.tex", "docs/ch2.tex"}, report.ScannedFiles)
	assert.Equal(t, 3, report.DefinedCount())
	assert.Equal(t, 2, report.UsedCount())

	require.Len(t, report.Result.Missing, 1)
	assert.Equal(t, "json", report.Result.Missing[0].Key)
	require.Len(t, report.Result.Missing[0].Usages, 1)
	assert.Equal(t, "docs/ch2.tex", report.Result.Missing[0].Usages[0].File)
	assert.Equal(t, 1, report.Result.Missing[0].Usages[0].Line)

	assert.Equal(t, []string{"cpu", "xml"}, keysOf(report.Result.Unused))
	assert.Equal(t, []string{"api"}, report.Result.Matched)
}

func TestEngine_Check_ExplicitFiles(t *testing.T) {
	e, mockFS, _ := newTestEngine(t, acronyms.NewFormat(), acronyms.NewGrammar())

	mockFS.EXPECT().Exists("acronyms.tex").Return(true, nil)
	mockFS.EXPECT().ReadFile("acronyms.tex").Return([]byte(acroDefs), nil)
	mockFS.EXPECT().Exists("main.tex").Return(true, nil)
	mockFS.EXPECT().ReadFile("main.tex").Return([]byte("\\ac{api} \\ac{cpu} \\ac{xml}\n"), nil)

	report, err := e.Check(CheckParams{
		DefinitionFile: "acronyms.tex",
		Files:          []string{"main.tex"},
	})
	require.NoError(t, err)

	assert.True(t, report.Clean())
	assert.Equal(t, []string{"api", "cpu", "xml"}, report.Result.Matched)
}

func TestEngine_Check_MissingScannedFile(t *testing.T) {
	e, mockFS, _ := newTestEngine(t, acronyms.NewFormat(), acronyms.NewGrammar())

	mockFS.EXPECT().Exists("acronyms.tex").Return(true, nil)
	mockFS.EXPECT().ReadFile("acronyms.tex").Return([]byte(acroDefs), nil)
	mockFS.EXPECT().Exists("gone.tex").Return(false, nil)

	_, err := e.Check(CheckParams{
		DefinitionFile: "acronyms.tex",
		Files:          []string{"gone.tex"},
	})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestEngine_Check_MissingDefinitionFile(t *testing.T) {
	e, mockFS, _ := newTestEngine(t, acronyms.NewFormat(), acronyms.NewGrammar())

	mockFS.EXPECT().Exists("acronyms.tex").Return(false, nil)

	_, err := e.Check(CheckParams{DefinitionFile: "acronyms.tex", Directory: "."})
	assert.ErrorIs(t, err, ErrDefinitionNotFound)
}

func TestEngine_Check_EmptyDefinitionPath(t *testing.T) {
	e, _, _ := newTestEngine(t, acronyms.NewFormat(), acronyms.NewGrammar())

	_, err := e.Check(CheckParams{DefinitionFile: ""})
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestEngine_Check_NoDefinitions(t *testing.T) {
	e, mockFS, _ := newTestEngine(t, acronyms.NewFormat(), acronyms.NewGrammar())

	mockFS.EXPECT().Exists("acronyms.tex").Return(true, nil)
	mockFS.EXPECT().ReadFile("acronyms.tex").Return([]byte("% nothing defined yet\n"), nil)

	_, err := e.Check(CheckParams{DefinitionFile: "acronyms.tex", Directory: "."})
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestEngine_Check_NoFilesDiscovered(t *testing.T) {
	e, mockFS, mockDisc := newTestEngine(t, acronyms.NewFormat(), acronyms.NewGrammar())

	mockFS.EXPECT().Exists("acronyms.tex").Return(true, nil)
	mockFS.EXPECT().ReadFile("acronyms.tex").Return([]byte(acroDefs), nil)
	mockDisc.EXPECT().Discover("empty", true).Return(nil, nil)

	_, err := e.Check(CheckParams{
		DefinitionFile: "acronyms.tex",
		Directory:      "empty",
		Recursive:      true,
	})
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestEngine_Check_DiscoveryError(t *testing.T) {
	e, mockFS, mockDisc := newTestEngine(t, acronyms.NewFormat(), acronyms.NewGrammar())

	boom := errors.New("walk failed")
	mockFS.EXPECT().Exists("acronyms.tex").Return(true, nil)
	mockFS.EXPECT().ReadFile("acronyms.tex").Return([]byte(acroDefs), nil)
	mockDisc.EXPECT().Discover("docs", true).Return(nil, boom)

	_, err := e.Check(CheckParams{
		DefinitionFile: "acronyms.tex",
		Directory:      "docs",
		Recursive:      true,
	})
	assert.ErrorIs(t, err, boom)
}
