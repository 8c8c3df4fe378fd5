package main

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/pkg/errors"
)

const releaseSlug = "Bornholm/orders"

// update replaces the running executable with the latest release, if it is
// newer than the given version.
func update(ctx context.Context, version string) (bool, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return false, errors.WithStack(err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:    source,
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	})
	if err != nil {
		return false, errors.WithStack(err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(releaseSlug))
	if err != nil {
		return false, errors.Wrap(err, "could not detect latest version")
	}

	if !found {
		return false, errors.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	if latest.LessOrEqual(version) {
		slog.DebugContext(ctx, "current version is the latest", slog.String("version", version))
		return false, nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return false, errors.Wrap(err, "could not locate executable path")
	}

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return false, errors.Wrap(err, "could not update executable")
	}

	slog.InfoContext(ctx, "updated to latest version", slog.String("version", latest.Version()))

	return true, nil
}

func restartSelf(ctx context.Context) error {
	executable, err := selfupdate.ExecutablePath()
	if err != nil {
		return errors.Wrap(err, "could not locate executable path")
	}

	cmd := exec.Command(executable, os.Args[1:]...)

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return errors.WithStack(err)
	}

	slog.InfoContext(ctx, "new process started", slog.Int("pid", cmd.Process.Pid))

	return nil
}
