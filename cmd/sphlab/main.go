package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sphlab/internal/hydro"
	"sphlab/internal/params"
	"sphlab/internal/phys"
	"sphlab/internal/settings"
	"sphlab/internal/snapshot"
	"sphlab/internal/units"
	"sphlab/internal/viz"
	"sphlab/internal/watch"
)

var (
	verbose   bool
	dataDir   string
	withMHD   bool
	watchFile bool
	usedPath  string
	outPath   string
	toCatalog bool
	runID     string
	showFile  string

	logger *zap.Logger
	env    settings.Settings
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sphlab",
		Short: "SPH parameter lab: resolve, report and export hydro run parameters",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			env, err = settings.Load()
			if err != nil {
				return fmt.Errorf("read environment: %w", err)
			}
			if cmd.Flags().Changed("data") {
				env.DataDir = dataDir
			} else {
				dataDir = env.DataDir
			}

			cfg := zap.NewProductionConfig()
			level := env.LogLevel
			if verbose {
				level = "debug"
			}
			lvl, err := zap.ParseAtomicLevel(level)
			if err != nil {
				return fmt.Errorf("bad log level %q: %w", level, err)
			}
			cfg.Level = lvl
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sphlab", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	validateCmd := &cobra.Command{
		Use:   "validate [params.yml]",
		Short: "resolve every parameter and report problems",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	validateCmd.Flags().BoolVar(&withMHD, "with-mhd", false, "enable the MHD module")
	validateCmd.Flags().BoolVar(&watchFile, "watch", false, "revalidate on file changes")
	validateCmd.Flags().StringVar(&usedPath, "used", "", "write the consumed parameters to a YAML file")

	reportCmd := &cobra.Command{
		Use:   "report [params.yml]",
		Short: "resolve and print the startup report",
		Args:  cobra.ExactArgs(1),
		RunE:  runReport,
	}
	reportCmd.Flags().BoolVar(&withMHD, "with-mhd", false, "enable the MHD module")

	exportCmd := &cobra.Command{
		Use:   "export [params.yml]",
		Short: "resolve and export snapshot metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().BoolVar(&withMHD, "with-mhd", false, "enable the MHD module")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "header file to write")
	exportCmd.Flags().BoolVar(&toCatalog, "catalog", false, "record the run in the catalog")
	exportCmd.Flags().StringVar(&runID, "run-id", "", "run id (default <file>_<unix time>)")

	mockCmd := &cobra.Command{
		Use:   "mock",
		Short: "report the no-configuration defaults",
		RunE:  runMock,
	}
	mockCmd.Flags().BoolVar(&withMHD, "with-mhd", false, "enable the MHD module")
	mockCmd.Flags().StringVarP(&outPath, "out", "o", "", "header file to write")

	previewCmd := &cobra.Command{
		Use:   "preview [params.yml]",
		Short: "plot the divB parabolic damping envelope",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [params.yml]",
		Short: "browse resolved records interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&withMHD, "with-mhd", false, "enable the MHD module")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list example parameter files",
		RunE:  runPresets,
	}

	presetCmd := &cobra.Command{
		Use:   "preset [name]",
		Short: "print or write an example parameter file",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreset,
	}
	presetCmd.Flags().StringVarP(&outPath, "out", "o", "", "file to write instead of stdout")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list cataloged runs",
		RunE:  runRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "print the attributes of a cataloged run or header file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().StringVar(&showFile, "file", "", "read a header file instead of the catalog")

	rootCmd.AddCommand(validateCmd, reportCmd, exportCmd, mockCmd, previewCmd, inspectCmd, presetsCmd, presetCmd, runsCmd, showCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolved bundles everything a parameter file yields.
type resolved struct {
	store *params.Store
	us    *units.System
	pc    *phys.Constants
	props *hydro.Props
}

func hydroOpts() []hydro.Option {
	if withMHD {
		return []hydro.Option{hydro.WithMHD()}
	}
	return nil
}

func resolveAll(path string) (*resolved, error) {
	p, err := params.Load(path)
	if err != nil {
		return nil, err
	}
	us, err := units.Resolve(p)
	if err != nil {
		return nil, err
	}
	pc, err := phys.Resolve(p, us)
	if err != nil {
		return nil, err
	}
	props, err := hydro.Resolve(p, us, pc, hydroOpts()...)
	if err != nil {
		return nil, err
	}
	return &resolved{store: p, us: us, pc: pc, props: props}, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	log := logger.Sugar()

	check := func() error {
		r, err := resolveAll(path)
		if err != nil {
			return err
		}
		for _, key := range r.store.Unused() {
			log.Warnf("unused parameter: %s", key)
		}
		if usedPath != "" {
			if err := writeUsed(r.store, usedPath); err != nil {
				return err
			}
			log.Infof("wrote %s", usedPath)
		}
		fmt.Printf("%s: OK\n", path)
		return nil
	}

	if err := check(); err != nil {
		if !watchFile {
			return err
		}
		log.Errorf("validation failed: %v", err)
	}
	if !watchFile {
		return nil
	}

	w, err := watch.New(path, log, func(string) {
		if err := check(); err != nil {
			log.Errorf("validation failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

func writeUsed(p *params.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.WriteUsed(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runReport(cmd *cobra.Command, args []string) error {
	r, err := resolveAll(args[0])
	if err != nil {
		return err
	}
	log := logger.Sugar()
	r.us.Report(log)
	r.pc.Report(log)
	r.props.Report(log)
	return nil
}

// exportTo writes the three metadata groups of one run.
func exportTo(r *resolved, source string, units, scheme, prov snapshot.AttributeWriter) error {
	if err := r.us.Export(units); err != nil {
		return err
	}
	if err := scheme.WriteString("Scheme", hydro.SchemeName); err != nil {
		return err
	}
	if err := r.props.Export(scheme); err != nil {
		return err
	}
	if err := prov.WriteString("Parameter file", source); err != nil {
		return err
	}
	return prov.WriteString("Tool", "sphlab")
}

func exportHeader(r *resolved, source, path string) error {
	f := snapshot.Create(path)
	if err := exportTo(r, source, f.Group("Units"), f.Group("HydroScheme"), f.Group("Provenance")); err != nil {
		return err
	}
	return f.Close()
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	r, err := resolveAll(path)
	if err != nil {
		return err
	}
	log := logger.Sugar()

	id := runID
	if id == "" {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		id = fmt.Sprintf("%s_%d", stem, time.Now().Unix())
	}
	if outPath == "" && !toCatalog {
		outPath = filepath.Join(dataDir, id+".json")
	}

	if outPath != "" {
		if err := exportHeader(r, path, outPath); err != nil {
			return err
		}
		log.Infof("wrote %s", outPath)
	}

	if toCatalog {
		cat, err := snapshot.OpenCatalog(env.CatalogOrDefault())
		if err != nil {
			return err
		}
		defer cat.Close()
		if err := cat.CreateRun(id, path); err != nil {
			return err
		}
		if err := exportTo(r, path,
			cat.Group(id, "Units"), cat.Group(id, "HydroScheme"), cat.Group(id, "Provenance")); err != nil {
			return err
		}
		log.Infof("cataloged run %s in %s", id, env.CatalogOrDefault())
	}

	fmt.Printf("run id: %s\n", id)
	return nil
}

func runMock(cmd *cobra.Command, args []string) error {
	log := logger.Sugar()

	r := &resolved{us: units.CGS(), pc: phys.CGS(), props: hydro.Mock(hydroOpts()...)}
	r.us.Report(log)
	r.pc.Report(log)
	r.props.Report(log)

	if outPath != "" {
		if err := exportHeader(r, "mock", outPath); err != nil {
			return err
		}
		log.Infof("wrote %s", outPath)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	// the envelope only exists inside the MHD module
	withMHD = true
	r, err := resolveAll(args[0])
	if err != nil {
		return err
	}

	curve := r.props.MHD.DampingEnvelope(72)
	if curve == nil {
		return fmt.Errorf("nothing to preview: divB cleaning is off or sigma is not positive")
	}

	fmt.Printf("divB parabolic damping, sigma = %g, over-clean factor = %g\n\n",
		r.props.MHD.DivBParabolicSigma, r.props.MHD.DivBOverCleanFactor)
	graph := asciigraph.Plot(curve,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption("exp(-sigma*tau), tau in [0,5]"),
	)
	fmt.Println(graph)
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	r, err := resolveAll(args[0])
	if err != nil {
		return err
	}
	p := tea.NewProgram(viz.New(args[0], r.props, r.us), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, name := range params.ListPresets() {
		p, _ := params.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\n", name, p.Description)
	}
	return w.Flush()
}

func runPreset(cmd *cobra.Command, args []string) error {
	p, ok := params.GetPreset(args[0])
	if !ok {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], params.ListPresets())
	}
	if outPath == "" {
		fmt.Print(p.Source)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(p.Source), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func runRuns(cmd *cobra.Command, args []string) error {
	cat, err := snapshot.OpenCatalog(env.CatalogOrDefault())
	if err != nil {
		return err
	}
	defer cat.Close()

	runs, err := cat.Runs()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tCREATED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			run.ID, run.Source, run.Created.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	if showFile != "" {
		c, err := snapshot.Open(showFile)
		if err != nil {
			return err
		}
		printGroups(c.Groups)
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need a run id or --file")
	}

	cat, err := snapshot.OpenCatalog(env.CatalogOrDefault())
	if err != nil {
		return err
	}
	defer cat.Close()

	groups, err := cat.Attributes(args[0])
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		return fmt.Errorf("no attributes for run %s", args[0])
	}
	printGroups(groups)
	return nil
}

func printGroups(groups []snapshot.Group) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, g := range groups {
		fmt.Fprintf(w, "%s\n", g.Name)
		for _, a := range g.Attrs {
			fmt.Fprintf(w, "  %s\t%s\n", a.Name, a.Display())
		}
	}
	_ = w.Flush()
}
