package dynaudnorm

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LibraryName is the product name used in reports and banners.
const LibraryName = "Dynamic Audio Normalizer"

// Report is an "about" or crash report: the build fingerprint plus what is
// known about the binary and the host running it.
type Report struct {
	Library      string `json:"library" yaml:"library"`
	Version      string `json:"version" yaml:"version"`
	BuildDate    string `json:"build_date" yaml:"build_date"`
	BuildTime    string `json:"build_time" yaml:"build_time"`
	Compiler     string `json:"compiler" yaml:"compiler"`
	Architecture string `json:"architecture" yaml:"architecture"`
	BuildType    string `json:"build_type" yaml:"build_type"`
	GoVersion    string `json:"go_version" yaml:"go_version"`

	MainModule    string `json:"main_module,omitempty" yaml:"main_module,omitempty"`
	ModuleVersion string `json:"module_version,omitempty" yaml:"module_version,omitempty"`
	VCSRevision   string `json:"vcs_revision,omitempty" yaml:"vcs_revision,omitempty"`
	VCSModified   bool   `json:"vcs_modified,omitempty" yaml:"vcs_modified,omitempty"`
	BinaryHash    string `json:"binary_hash,omitempty" yaml:"binary_hash,omitempty"`

	Host        *HostInfo `json:"host,omitempty" yaml:"host,omitempty"`
	CollectedAt time.Time `json:"collected_at" yaml:"collected_at"`
}

// CollectReport builds a Report for the running binary. Optional sections
// that cannot be collected are logged at debug level and left empty; only
// a cancelled context is an error.
func CollectReport(ctx context.Context, cfg ReportConfig) (*Report, error) {
	cfg.setDefaults()

	info, _ := debug.ReadBuildInfo()
	r := newReport(Environment(), info)

	if !cfg.SkipBinaryHash {
		if hash, err := BinaryHash(); err == nil {
			r.BinaryHash = hash
		} else {
			cfg.Logger.Debug("binary hash unavailable", slog.Any("error", err))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !cfg.SkipHost {
		h := collectHost(ctx, cfg)
		r.Host = &h
	}

	cfg.Logger.Debug("report collected",
		slog.String("version", r.Version),
		slog.String("compiler", r.Compiler),
		slog.String("arch", r.Architecture))
	return r, nil
}

func newReport(fp Fingerprint, info *debug.BuildInfo) *Report {
	r := &Report{
		Library:      LibraryName,
		Version:      fp.Version().String(),
		BuildDate:    fp.BuildDate(),
		BuildTime:    fp.BuildTime(),
		Compiler:     fp.Compiler(),
		Architecture: fp.Architecture(),
		BuildType:    fp.BuildType(),
		GoVersion:    runtime.Version(),
		CollectedAt:  time.Now().UTC(),
	}
	if info == nil {
		return r
	}
	r.MainModule = info.Main.Path
	r.ModuleVersion = info.Main.Version
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			r.VCSRevision = s.Value
		case "vcs.modified":
			r.VCSModified, _ = strconv.ParseBool(s.Value)
		}
	}
	return r
}

// ReportField is one labelled line of a report, in display order.
type ReportField struct {
	Name  string
	Value string
}

// Fields flattens the report for line- or table-oriented output. Empty
// optional values are skipped.
func (r *Report) Fields() []ReportField {
	fields := []ReportField{
		{"Library", r.Library},
		{"Version", r.Version},
		{"Build date", r.BuildDate},
		{"Build time", r.BuildTime},
		{"Compiler", r.Compiler},
		{"Architecture", r.Architecture},
		{"Build type", r.BuildType},
		{"Go", r.GoVersion},
	}
	add := func(name, value string) {
		if value != "" {
			fields = append(fields, ReportField{name, value})
		}
	}
	add("Module", r.MainModule)
	add("Module version", r.ModuleVersion)
	add("Revision", r.VCSRevision)
	if r.VCSModified {
		add("Modified", "true")
	}
	add("Binary SHA-256", r.BinaryHash)
	if h := r.Host; h != nil {
		add("OS", h.OS)
		add("Platform", h.Platform)
		add("Platform version", h.PlatformVersion)
		add("Kernel", h.KernelVersion)
		add("Kernel arch", h.KernelArch)
		if h.TotalRAMMB > 0 {
			add("Total RAM (MB)", strconv.FormatUint(h.TotalRAMMB, 10))
		}
		add("Machine ID", h.MachineID)
	}
	return fields
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
