package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stalwartlabs/storekey/common/mathutil"
	"github.com/stalwartlabs/storekey/config"
	"github.com/stalwartlabs/storekey/memkv"
)

func newExportCmd(log *zap.Logger, configPath *string) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Seed the reference engine from config and export a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if *configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			eng := memkv.NewEngine(log)
			if cfg.SeedPath != "" {
				n, err := seedEngine(eng, cfg.SeedPath)
				if err != nil {
					return fmt.Errorf("seed engine: %w", err)
				}
				log.Info("seeded engine", zap.Int("rows", n))
			}

			rows := eng.ScanAll()
			if cfg.Export.MaxSize > 0 {
				var total uint64
				for _, kv := range rows {
					total += uint64(len(kv.Key) + len(kv.Value))
				}
				if total > uint64(cfg.Export.MaxSize) {
					chunks := mathutil.CeilDiv(int(total), int(cfg.Export.MaxSize))
					log.Info("export exceeds max_size, splitting across chunk files",
						zap.Int("chunks", chunks), zap.Uint64("total_bytes", total), zap.Stringer("max_size", cfg.Export.MaxSize))
					return writeChunkedExport(outPath, rows, chunks, cfg.Export.Compress)
				}
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer out.Close()

			if err := writeExport(out, rows, cfg.Export.Compress); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			log.Info("export complete", zap.Int("rows", len(rows)), zap.String("path", outPath))
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "snapshot.dump", "output file path")
	return cmd
}

// seedEngine loads "hexkey hexvalue" lines from path into eng.
func seedEngine(eng *memkv.Engine, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			return n, fmt.Errorf("malformed seed line: %q", line)
		}
		key, err := hex.DecodeString(parts[0])
		if err != nil {
			return n, fmt.Errorf("decode key %q: %w", parts[0], err)
		}
		value, err := hex.DecodeString(parts[1])
		if err != nil {
			return n, fmt.Errorf("decode value %q: %w", parts[1], err)
		}
		eng.Put(key, value)
		n++
	}
	return n, scanner.Err()
}

// writeChunkedExport splits rows into consecutive chunks of
// ceil(len(rows)/n) rows each and writes one numbered file per chunk
// (basePath, basePath.1, basePath.2, ...; the first chunk keeps
// basePath's own name). That makes at most n files, and fewer when the
// rows do not fill n chunks.
func writeChunkedExport(basePath string, rows []memkv.KV, n int, compress bool) error {
	if n < 1 {
		n = 1
	}
	perChunk := mathutil.CeilDiv(len(rows), n)
	if perChunk < 1 {
		perChunk = 1
	}

	for i := 0; i*perChunk < len(rows); i++ {
		end := (i + 1) * perChunk
		if end > len(rows) {
			end = len(rows)
		}
		path := basePath
		if i > 0 {
			path = fmt.Sprintf("%s.%d", basePath, i)
		}
		out, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create chunk %d: %w", i, err)
		}
		err = writeExport(out, rows[i*perChunk:end], compress)
		out.Close()
		if err != nil {
			return fmt.Errorf("write chunk %d: %w", i, err)
		}
	}
	return nil
}

// writeExport writes rows as "hexkey hexvalue\n" lines, optionally
// through a zstd encoder.
func writeExport(out *os.File, rows []memkv.KV, compress bool) error {
	var w interface {
		Write([]byte) (int, error)
		Close() error
	}
	if compress {
		enc, err := zstd.NewWriter(out)
		if err != nil {
			return err
		}
		w = enc
	} else {
		w = nopCloser{out}
	}
	defer w.Close()

	buf := bufio.NewWriter(w)
	for _, kv := range rows {
		fmt.Fprintf(buf, "%s %s\n", hex.EncodeToString(kv.Key), hex.EncodeToString(kv.Value))
	}
	return buf.Flush()
}

type nopCloser struct{ *os.File }

func (nopCloser) Close() error { return nil }
