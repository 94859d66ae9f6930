package synpp

import (
	"errors"
	"fmt"
	"io"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/quentar/astroion/species"
)

// Sentinel errors returned by Export.
var (
	// ErrBadConfig indicates a reference template without a setup block.
	ErrBadConfig = errors.New("synpp: reference config holds no setups")

	// ErrNoRefs indicates a model without significant species references.
	ErrNoRefs = errors.New("synpp: no species reference with log tau above threshold")
)

// logTauThreshold drops species whose reference optical depth is too small
// to contribute to the synthesized spectrum.
const logTauThreshold = -50

// Config mirrors the synpp configuration document. Keys this exporter does
// not manage are carried through the inline maps untouched, so a template
// survives a load/export cycle.
type Config struct {
	Output  Output         `yaml:"output"`
	Opacity Opacity        `yaml:"opacity"`
	Grid    Grid           `yaml:"grid"`
	Setups  []Setup        `yaml:"setups"`
	Extra   map[string]any `yaml:",inline"`
}

// Output is the spectral window of the synthesized spectrum, in angstrom.
type Output struct {
	MinWavelength float64        `yaml:"min_wl"`
	MaxWavelength float64        `yaml:"max_wl"`
	Extra         map[string]any `yaml:",inline"`
}

// Opacity holds the line-list location and the reference velocity in units
// of 1000 km/s.
type Opacity struct {
	LineDir string         `yaml:"line_dir"`
	VRef    float64        `yaml:"v_ref"`
	Extra   map[string]any `yaml:",inline"`
}

// Grid bounds the velocity grid, in units of 1000 km/s.
type Grid struct {
	VOuterMax float64        `yaml:"v_outer_max"`
	Extra     map[string]any `yaml:",inline"`
}

// Setup is one synpp setup block: parallel per-ion slices plus the
// photospheric temperature they share.
type Setup struct {
	TPhot  float64        `yaml:"t_phot"`
	Ions   []int          `yaml:"ions"`
	LogTau []float64      `yaml:"log_tau"`
	Active []bool         `yaml:"active"`
	Temp   []float64      `yaml:"temp"`
	VMin   []float64      `yaml:"v_min"`
	VMax   []float64      `yaml:"v_max"`
	Aux    []float64      `yaml:"aux"`
	Extra  map[string]any `yaml:",inline"`
}

// SpeciesRef ties a species to its reference Sobolev optical depth
// (log10).
type SpeciesRef struct {
	Species species.Identifier
	LogTau  float64
}

// Model supplies everything Export overwrites in the template: the
// spectral window (angstrom), the reference and outer velocities (units of
// 1000 km/s), the species references, and optionally the root of an
// external line database.
type Model struct {
	MinWavelength float64
	MaxWavelength float64
	VRef          float64
	VOuterMax     float64
	Refs          []SpeciesRef
	LinesDB       string
}

// LoadConfig parses a reference template.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("synpp: decoding reference config: %w", err)
	}

	return &cfg, nil
}

// Export fills cfg from m and writes the resulting document to w. The
// template is modified in place: the first setup block receives one entry
// per significant species reference, every entry active, spanning the full
// velocity range at the setup's photospheric temperature.
func Export(w io.Writer, cfg *Config, m Model) error {
	if len(cfg.Setups) == 0 {
		return ErrBadConfig
	}

	refs := significantRefs(m.Refs)
	if len(refs) == 0 {
		return fmt.Errorf("%w (threshold %d)", ErrNoRefs, logTauThreshold)
	}

	cfg.Output.MinWavelength = m.MinWavelength
	cfg.Output.MaxWavelength = m.MaxWavelength
	cfg.Opacity.VRef = m.VRef
	cfg.Grid.VOuterMax = m.VOuterMax
	if m.LinesDB != "" {
		cfg.Opacity.LineDir = path.Join(m.LinesDB, "refs.dat")
	}

	setup := &cfg.Setups[0]
	setup.Ions = setup.Ions[:0]
	setup.LogTau = setup.LogTau[:0]
	setup.Active = setup.Active[:0]
	setup.Temp = setup.Temp[:0]
	setup.VMin = setup.VMin[:0]
	setup.VMax = setup.VMax[:0]
	setup.Aux = setup.Aux[:0]
	for _, ref := range refs {
		setup.Ions = append(setup.Ions, IonCode(ref.Species))
		setup.LogTau = append(setup.LogTau, ref.LogTau)
		setup.Active = append(setup.Active, true)
		setup.Temp = append(setup.Temp, setup.TPhot)
		setup.VMin = append(setup.VMin, m.VRef)
		setup.VMax = append(setup.VMax, m.VOuterMax)
		setup.Aux = append(setup.Aux, 1e200)
	}

	if _, err := io.WriteString(w, "---\n"); err != nil {
		return fmt.Errorf("synpp: writing config: %w", err)
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("synpp: encoding config: %w", err)
	}

	return enc.Close()
}

// IonCode renders a species as the numeric ion code synpp reads:
// 100 * atomic number + ion number.
func IonCode(id species.Identifier) int {
	return 100*id.AtomicNumber + id.IonNumber
}

func significantRefs(refs []SpeciesRef) []SpeciesRef {
	kept := refs[:0:0]
	for _, ref := range refs {
		if ref.LogTau > logTauThreshold {
			kept = append(kept, ref)
		}
	}

	return kept
}
