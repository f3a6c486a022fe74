// Command relayspec extracts structured specification records from
// datasheet PDFs and writes them as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/hsi-tools/relayspec/pkg/config"
	"github.com/hsi-tools/relayspec/pkg/extract"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "relayspec",
		Short:         "Extract structured specs from sensor and relay datasheets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newProcessCmd())
	return root
}

type processFlags struct {
	outDir      string
	diagramsDir string
	profilePath string
	workers     int
	verbose     bool
}

func newProcessCmd() *cobra.Command {
	settings := config.Load()
	flags := processFlags{}

	cmd := &cobra.Command{
		Use:   "process [pdf|dir ...]",
		Short: "Process datasheet PDFs into JSON records",
		Long: `Process extracts the specification tables, feature and advantage
lists, notes, model name and product diagram from each PDF and writes
one JSON record per document into the output directory.

Arguments may be PDF files or directories to scan for PDFs. With no
arguments the uploads directory from the environment is scanned.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{settings.UploadsDir}
			}
			paths, err := collectPDFs(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no PDF files found")
			}
			return runProcess(flags, paths)
		},
	}

	cmd.Flags().StringVarP(&flags.outDir, "out", "o", "out", "directory for JSON records")
	cmd.Flags().StringVar(&flags.diagramsDir, "diagrams", settings.DiagramsDir, "directory for extracted diagrams")
	cmd.Flags().StringVar(&flags.profilePath, "profile", settings.ProfilePath, "YAML extraction profile (default built-in)")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 4, "concurrent documents")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	return cmd
}

// collectPDFs expands each argument: files pass through, directories
// contribute their .pdf entries (non-recursive, name-sorted by ReadDir).
func collectPDFs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return paths, nil
}

func runProcess(flags processFlags, paths []string) error {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []extract.Option{
		extract.WithLogger(logger),
		extract.WithDiagramsDir(flags.diagramsDir),
	}
	if flags.profilePath != "" {
		profile, err := extract.LoadProfile(flags.profilePath)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		opts = append(opts, extract.WithProfile(profile))
	}
	processor := extract.New(opts...)

	if err := os.MkdirAll(flags.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	workers := flags.workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := processOne(processor, path, flags.outDir, logger); err != nil {
					logger.Error("processing failed", "file", path, "error", err)
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}
		}()
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(paths))
	}
	return nil
}

func processOne(processor *extract.Processor, path, outDir string, logger *slog.Logger) error {
	data, err := processor.Process(path)
	if err != nil {
		return err
	}

	out := filepath.Join(outDir, recordName(path, data.ModelName))
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := os.WriteFile(out, payload, 0o644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	logger.Info("processed", "file", path, "model", data.ModelName, "record", out)
	return nil
}

// recordName names the output file after the model when one was resolved,
// falling back to the input basename.
func recordName(path, model string) string {
	if model != "" {
		return model + ".json"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
