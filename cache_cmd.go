package main

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the icon cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var cacheDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the cache directory",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		dir := newClient().Directory()
		if dir == "" {
			return errors.New("caching is disabled")
		}
		fmt.Println(dir)
		return nil
	},
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cache location, entry count and size",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		c := newClient()
		dir := c.Directory()
		if dir == "" {
			fmt.Println("Caching is disabled.")
			return nil
		}

		var count int
		var size int64
		err := filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return err
			}
			count++
			size += info.Size()
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("unable to read cache directory: %w", err)
		}

		fmt.Println("Location:", dir)
		fmt.Println("Icons:   ", count)
		fmt.Println("Size:    ", humanize.Bytes(uint64(size))) //nolint:gosec
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached icons",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		if err := newClient().ClearCache(); err != nil {
			return fmt.Errorf("unable to clear cache: %w", err)
		}
		fmt.Println("Cache cleared.")
		return nil
	},
}

var cacheSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete cached icons that are older than their icon set",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		n, err := newClient().SweepCache()
		if err != nil {
			return fmt.Errorf("unable to sweep cache: %w", err)
		}
		fmt.Printf("Removed %d stale %s.\n", n, pluralize(n, "icon"))
		return nil
	},
}

var cacheExportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export the cache as a zstd-compressed tarball",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dir := newClient().Directory()
		if dir == "" {
			return errors.New("caching is disabled")
		}

		out := "goconify-cache.tar.zst"
		if len(args) == 1 {
			out = args[0]
		}
		if err := exportCache(dir, out); err != nil {
			return err
		}
		fmt.Println("Wrote cache archive to:", out)
		return nil
	},
}

// exportCache writes every cache entry under dir into a tar.zst archive at
// out. Entries are stored flat, by file name.
func exportCache(dir, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("unable to create archive: %w", err)
	}
	defer func() { _ = f.Close() }()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("unable to create compressor: %w", err)
	}
	tw := tar.NewWriter(zw)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("unable to read cache directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return fmt.Errorf("unable to stat cache entry: %w", err)
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return fmt.Errorf("unable to build archive header: %w", err)
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("unable to write archive header: %w", err)
		}
		src, err := os.Open(filepath.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("unable to open cache entry: %w", err)
		}
		_, err = io.Copy(tw, src)
		_ = src.Close()
		if err != nil {
			return fmt.Errorf("unable to archive cache entry: %w", err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("unable to finish archive: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to finish compression: %w", err)
	}
	return f.Close()
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

func init() {
	cacheCmd.AddCommand(cacheDirCmd, cacheInfoCmd, cacheClearCmd, cacheSweepCmd, cacheExportCmd)
}
