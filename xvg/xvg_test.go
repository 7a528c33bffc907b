package xvg

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const energyFile = "../test/energy.xvg"

func TestParseEnergy(Te *testing.T) {
	M, D, err := Parse(energyFile)
	if err != nil {
		Te.Fatal(err)
	}
	if D.NSeries() != 2 {
		Te.Fatalf("expected 2 series, got %d", D.NSeries())
	}
	for i := 0; i < D.NSeries(); i++ {
		if l := D.Series(i).Len(); l != 5 {
			Te.Errorf("series %d: expected 5 values, got %d", i, l)
		}
	}
	if len(D.X()) != 5 || D.X()[4] != 40 {
		Te.Errorf("wrong x-axis: %v", D.X())
	}
	if D.Series(1).Values[0] != 61340.808594 {
		Te.Errorf("wrong value for the first kinetic energy: %v", D.Series(1).Values[0])
	}
	if M.Title() != "GROMACS Energies" {
		Te.Errorf("wrong title %q", M.Title())
	}
	if M.Labels.XAxis != "Time (ps)" || M.Labels.YAxis != "(kJ/mol)" {
		Te.Errorf("wrong axis labels %q %q", M.Labels.XAxis, M.Labels.YAxis)
	}
	want := []string{"Potential", "Kinetic En."}
	for i, v := range want {
		if M.SeriesLabel(i) != v {
			Te.Errorf("label %d: expected %q, got %q", i, v, M.SeriesLabel(i))
		}
	}
	if D.Elements() != 10 {
		Te.Errorf("expected 10 elements, got %d", D.Elements())
	}
}

func TestParseMissingLabels(Te *testing.T) {
	M, D, err := Parse("../test/unlabelled.xvg")
	if err != nil {
		Te.Fatal(err)
	}
	if D.NSeries() != 4 {
		Te.Fatalf("expected 4 series, got %d", D.NSeries())
	}
	if len(M.Labels.Series) != 4 {
		Te.Fatalf("expected 4 labels, got %v", M.Labels.Series)
	}
	var missing int
	for _, v := range M.Labels.Series {
		if v == MissingLabel {
			missing++
		}
	}
	if missing != 3 {
		Te.Errorf("expected 3 placeholder labels, got %d", missing)
	}
	if M.Get("subtitle") != "Protein" {
		Te.Errorf("subtitle not read: %v", M.Fields)
	}
}

func TestParseUnsupportedType(Te *testing.T) {
	M, D, err := Parse("../test/nxy.xvg")
	if !errors.Is(err, ErrUnsupportedType) {
		Te.Fatalf("expected an unsupported type error, got %v", err)
	}
	if M != nil || D != nil {
		Te.Error("no data should be returned with an unsupported type")
	}
	var e Error
	if !errors.As(err, &e) || !e.Critical() || !strings.HasSuffix(e.FileName(), "nxy.xvg") {
		Te.Errorf("wrong error details: %#v", err)
	}
	if deco := e.Decorate(""); len(deco) != 2 || deco[1] != "Parse" {
		Te.Errorf("wrong decorations %v", deco)
	}
}

func TestParseNotFound(Te *testing.T) {
	_, _, err := Parse("../test/nothere.xvg")
	if !errors.Is(err, ErrFileNotFound) {
		Te.Errorf("expected a file not found error, got %v", err)
	}
	//a directory is not a regular file
	_, _, err = Parse("../test")
	if !errors.Is(err, ErrFileNotFound) {
		Te.Errorf("expected a file not found error for a directory, got %v", err)
	}
}

func TestParseReaderShapes(Te *testing.T) {
	in := `@TYPE xy
@ s0 legend "A"
@ s1 legend "B"
@ s2 legend "C"
1 2 3
2 3 4 5
3 4 5
bla bla
-1 2 3
4 5 6`
	M, D, err := ParseReader(strings.NewReader(in), "inline")
	if err != nil {
		Te.Fatal(err)
	}
	//the ragged row is cut to 3 columns, the negative one is not a data row
	if D.NSeries() != 2 || len(D.X()) != 4 {
		Te.Fatalf("wrong shape: %d series, %d rows", D.NSeries(), len(D.X()))
	}
	if D.Series(1).Values[3] != 6 {
		Te.Errorf("last line (without newline) not read: %v", D.Series(1).Values)
	}
	//extra labels are kept as they are
	if len(M.Labels.Series) != 3 {
		Te.Errorf("labels should not be removed by the parser: %v", M.Labels.Series)
	}
}

func TestParseBadNumber(Te *testing.T) {
	_, _, err := ParseReader(strings.NewReader("@TYPE xy\n1 2\n2 x3\n"), "inline")
	if !errors.Is(err, ErrFormat) {
		Te.Errorf("expected format error, got %v", err)
	}
	_, _, err = ParseReader(strings.NewReader("@TYPE\n1 2\n"), "inline")
	if !errors.Is(err, ErrFormat) {
		Te.Errorf("expected format error for an empty TYPE, got %v", err)
	}
}

func TestParseNaN(Te *testing.T) {
	_, D, err := ParseReader(strings.NewReader("@TYPE xy\n0 1 -nan\n1 nan 3\n2 +NaN inf\n"), "inline")
	if err != nil {
		Te.Fatal(err)
	}
	if D.NSeries() != 2 {
		Te.Fatalf("expected 2 series, got %d", D.NSeries())
	}
	a, b := D.Series(0).Values, D.Series(1).Values
	if a[0] != 1 || !math.IsNaN(a[1]) || !math.IsNaN(a[2]) {
		Te.Errorf("wrong first series: %v", a)
	}
	if !math.IsNaN(b[0]) || b[1] != 3 || !math.IsInf(b[2], 1) {
		Te.Errorf("wrong second series: %v", b)
	}
	_, _, err = ParseReader(strings.NewReader("@TYPE xy\n0 --nanx\n"), "inline")
	if !errors.Is(err, ErrFormat) {
		Te.Errorf("expected format error, got %v", err)
	}
}

func TestParseEmpty(Te *testing.T) {
	M, D, err := ParseReader(strings.NewReader("# nothing here\n"), "inline")
	if err != nil {
		Te.Fatal(err)
	}
	if D.NSeries() != 0 || len(M.Labels.Series) != 0 || D.X() != nil {
		Te.Errorf("expected empty data, got %d series", D.NSeries())
	}
}

func TestDirectives(Te *testing.T) {
	cases := []struct {
		line  string
		kind  DirectiveKind
		name  string
		value string
	}{
		{`@ s0 legend "Energy"`, SeriesLegend, "s0", "Energy"},
		{`@ s12 legend "Coul. recip."`, SeriesLegend, "s12", "Coul. recip."},
		{`@    xaxis  label "Time (ps)"`, AxisLabel, "xaxis", "Time (ps)"},
		{`@ YAXIS label "nm"`, AxisLabel, "yaxis", "nm"},
		{`@TYPE xy`, TypeDecl, "TYPE", "xy"},
		{`@ TYPE nxy`, TypeDecl, "TYPE", "nxy"},
		{`@ legend box on`, Ignored, "legend", ""},
		{`@ view 0.15, 0.15, 0.75, 0.85`, Ignored, "view", ""},
		{`@    title "GROMACS Energies"`, KeyValue, "title", "GROMACS Energies"},
		{`@ s0x legend "no"`, Unrecognized, "s0x", ""},
		{`@ a b c`, Unrecognized, "a", ""},
		{`@`, Unrecognized, "", ""},
		{`@ title "unterminated`, Unrecognized, "title", ""},
	}
	for _, c := range cases {
		d := ParseDirective(c.line)
		if d.Kind != c.kind || d.Name != c.name {
			Te.Errorf("%s: expected %v %q, got %v %q", c.line, c.kind, c.name, d.Kind, d.Name)
		}
		if c.kind != Unrecognized && d.Value != c.value {
			Te.Errorf("%s: expected value %q, got %q", c.line, c.value, d.Value)
		}
	}
}

func TestRunningAverage(Te *testing.T) {
	D := NewData([]float64{0, 1, 2, 3, 4}, []float64{1, 2, 3, 4, 5})
	M := NewMetadata()
	M.Labels.Series = append(M.Labels.Series, "S")
	if err := RunningAverage(D, M, 2); err != nil {
		Te.Fatal(err)
	}
	if D.NSeries() != 2 {
		Te.Fatalf("expected 2 series after averaging, got %d", D.NSeries())
	}
	want := []float64{1.5, 2.5, 3.5, 4.5}
	got := D.Series(1).Values
	if len(got) != len(want) {
		Te.Fatalf("expected %v, got %v", want, got)
	}
	for i, v := range want {
		if math.Abs(got[i]-v) > 1e-12 {
			Te.Errorf("expected %v, got %v", want, got)
		}
	}
	if M.SeriesLabel(1) != "S"+AveragedSuffix {
		Te.Errorf("wrong label %q", M.SeriesLabel(1))
	}
	x := D.XFor(1)
	if len(x) != 4 || x[0] != 1 {
		Te.Errorf("averaged series is not aligned with the x-axis: %v", x)
	}
	if x := D.XFor(0); len(x) != 5 {
		Te.Errorf("original series lost alignment: %v", x)
	}
}

func TestRunningAverageFile(Te *testing.T) {
	M, D, err := Parse("../test/unlabelled.xvg")
	if err != nil {
		Te.Fatal(err)
	}
	L := D.Series(0).Len()
	W := 3
	if err := RunningAverage(D, M, W); err != nil {
		Te.Fatal(err)
	}
	if D.NSeries() != 8 || len(M.Labels.Series) != 8 {
		Te.Fatalf("expected 8 series and labels, got %d and %d", D.NSeries(), len(M.Labels.Series))
	}
	for i := 4; i < 8; i++ {
		s := D.Series(i)
		orig := D.Series(i - 4).Values
		if s.Len() != L-W+1 {
			Te.Errorf("series %d: expected %d points, got %d", i, L-W+1, s.Len())
		}
		if s.Skip != W-1 {
			Te.Errorf("series %d: expected skip %d, got %d", i, W-1, s.Skip)
		}
		for j, v := range s.Values {
			mean := (orig[j] + orig[j+1] + orig[j+2]) / 3
			if math.Abs(mean-v) > 1e-9 {
				Te.Errorf("series %d point %d: expected %v, got %v", i, j, mean, v)
			}
		}
	}
	if M.SeriesLabel(4) != "Rg (Av)" || M.SeriesLabel(5) != MissingLabel+" (Av)" {
		Te.Errorf("wrong averaged labels %v", M.Labels.Series)
	}
}

func TestRunningAverageWindow(Te *testing.T) {
	D := NewData([]float64{0, 1}, []float64{1, 2})
	M := NewMetadata()
	if err := RunningAverage(D, M, 0); !errors.Is(err, ErrWindow) {
		Te.Errorf("expected a window error, got %v", err)
	}
	if err := RunningAverage(D, M, 5); err != nil {
		Te.Fatal(err)
	}
	if D.Series(1).Len() != 0 || len(D.XFor(1)) != 0 {
		Te.Errorf("a window larger than the series should give an empty average")
	}
	if M.SeriesLabel(0) != MissingLabel {
		Te.Errorf("labels should have been padded: %v", M.Labels.Series)
	}
}

func compressCopy(Te *testing.T, dst string, wrap func(io.Writer) (io.WriteCloser, error)) {
	in, err := os.ReadFile(energyFile)
	if err != nil {
		Te.Fatal(err)
	}
	f, err := os.Create(dst)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	w, err := wrap(f)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := w.Write(in); err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
}

func TestParseCompressed(Te *testing.T) {
	dir := Te.TempDir()
	gz := filepath.Join(dir, "energy.xvg.gz")
	zs := filepath.Join(dir, "energy.xvg.zst")
	compressCopy(Te, gz, func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil })
	compressCopy(Te, zs, func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) })
	for _, name := range []string{gz, zs} {
		M, D, err := Parse(name)
		if err != nil {
			Te.Errorf("%s: %v", name, err)
			continue
		}
		if D.NSeries() != 2 || len(D.X()) != 5 || M.SeriesLabel(0) != "Potential" {
			Te.Errorf("%s: wrong content, %d series", name, D.NSeries())
		}
	}
}
