package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/example/protondrive/internal/logging"
	"github.com/example/protondrive/internal/release"
)

type options struct {
	repo   string
	dest   string
	yes    bool
	goos   string
	goarch string
}

func main() {
	log.SetFlags(0)

	fs := flag.NewFlagSet("protondrive-install", flag.ExitOnError)
	repo := fs.String("repo", release.DefaultRepo, "GitHub repository publishing the builds")
	dest := fs.String("dest", "", "download directory (default ~/Downloads)")
	yes := fs.Bool("yes", false, "launch the download without prompting")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[1:])

	if *debug {
		logging.EnableDebug()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := options{repo: *repo, dest: *dest, yes: *yes, goos: runtime.GOOS, goarch: runtime.GOARCH}
	if err := install(ctx, release.NewClient(nil), opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "\nInstallation failed:\n   %v\n\n", err)
		fmt.Println("What you can do:")
		fmt.Printf("   1. Check releases: %s\n", release.ReleasesURL(opts.repo))
		fmt.Println("   2. Wait for builds to complete (GitHub Actions)")
		fmt.Printf("   3. Build from source: https://github.com/%s#build-from-source\n\n", opts.repo)
		os.Exit(1)
	}
}

func install(ctx context.Context, client *release.Client, opts options, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Installing Proton Drive Desktop...")
	fmt.Fprintf(out, "Platform: %s (%s)\n\n", opts.goos, opts.goarch)

	fmt.Fprintln(out, "Fetching latest release from GitHub...")
	rel, err := client.Latest(ctx, opts.repo)
	if err != nil {
		return err
	}
	asset, err := release.SelectAsset(rel, opts.goos, opts.goarch)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Found: %s\n\n", asset.BrowserDownloadURL)

	dir := opts.dest
	if dir == "" {
		dir, err = release.DownloadsDir()
		if err != nil {
			return err
		}
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure download dir: %w", err)
	}

	file := filepath.Join(dir, release.FileName(asset.BrowserDownloadURL))
	fmt.Fprintf(out, "Downloading to %s...\n", file)
	if _, err := client.Download(ctx, asset.BrowserDownloadURL, file); err != nil {
		return err
	}
	fmt.Fprintln(out, "Download complete")
	fmt.Fprintln(out)

	switch opts.goos {
	case "linux":
		if err := release.MakeExecutable(file); err != nil {
			return err
		}
		fmt.Fprintln(out, "Installation complete!")
		fmt.Fprintf(out, "\nApp saved to: %s\n", file)
		fmt.Fprintf(out, "\nTo launch:\n   %s\n\n", file)

		if !opts.yes {
			fmt.Fprint(out, "Would you like to launch now? (y/n) ")
			if !confirm(in) {
				return nil
			}
		}
		if err := release.Launch(opts.goos, file); err != nil {
			log.Printf("launch failed: %v", err)
			fmt.Fprintf(out, "\nRun manually: %s\n", file)
		}
	case "darwin":
		fmt.Fprintln(out, "Installation complete!")
		fmt.Fprintf(out, "\nDownloaded to: %s\n", file)
		fmt.Fprintf(out, "\nDouble-click to mount and install, or:\n   open %s\n\n", file)
		openIfRequested(opts, file, out)
	case "windows":
		fmt.Fprintln(out, "Installation complete!")
		fmt.Fprintf(out, "\nDownloaded to: %s\n", file)
		fmt.Fprintf(out, "\nDouble-click to run the installer, or:\n   start %s\n\n", file)
		openIfRequested(opts, file, out)
	default:
		fmt.Fprintf(out, "Downloaded to: %s\n", file)
	}
	return nil
}

func openIfRequested(opts options, file string, out io.Writer) {
	if !opts.yes {
		return
	}
	if err := release.Launch(opts.goos, file); err != nil {
		log.Printf("open failed: %v", err)
		fmt.Fprintf(out, "Open manually: %s\n", file)
	}
}

func confirm(in io.Reader) bool {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
