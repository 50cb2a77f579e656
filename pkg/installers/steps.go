package installers

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mpontes/stowaway/pkg/config"
	"github.com/mpontes/stowaway/pkg/errors"
)

// Upstream locations for the bootstrapped tools
const (
	ohMyZshRepo    = "https://github.com/ohmyzsh/ohmyzsh.git"
	tpmRepo        = "https://github.com/tmux-plugins/tpm.git"
	vimPlugURL     = "https://raw.githubusercontent.com/junegunn/vim-plug/master/plug.vim"
	starshipScript = "https://starship.rs/install.sh"
)

// DefaultSteps builds the fixed installer sequence for a home
// directory, honoring the per-step configuration toggles
func DefaultSteps(cfg *config.InstallersConfig, homeDir string) []Step {
	var steps []Step

	if cfg.OhMyZsh {
		steps = append(steps, &gitCloneStep{
			name: "oh-my-zsh",
			repo: ohMyZshRepo,
			dest: filepath.Join(homeDir, ".oh-my-zsh"),
		})
	}
	if cfg.TmuxPlugins {
		steps = append(steps, &gitCloneStep{
			name: "tmux-plugin-manager",
			repo: tpmRepo,
			dest: filepath.Join(homeDir, ".tmux", "plugins", "tpm"),
		})
	}
	if cfg.VimPlug {
		steps = append(steps, &vimPlugStep{
			dest: filepath.Join(homeDir, ".local", "share", "nvim", "site", "autoload", "plug.vim"),
		})
	}
	if cfg.Starship {
		steps = append(steps, &starshipStep{})
	}
	if cfg.DefaultShell != "" {
		steps = append(steps, &defaultShellStep{
			shell:   cfg.DefaultShell,
			timeout: time.Duration(cfg.ShellChangeTimeoutSeconds) * time.Second,
		})
	}

	return steps
}

// gitCloneStep clones a repository once; a present destination means
// the step is satisfied
type gitCloneStep struct {
	name string
	repo string
	dest string
}

func (s *gitCloneStep) Name() string { return s.name }

func (s *gitCloneStep) Check(_ context.Context) (bool, error) {
	_, err := os.Stat(s.dest)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *gitCloneStep) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", s.repo, s.dest)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, errors.ErrStepExecute, "git clone of %s failed", s.repo).
			WithDetail("output", strings.TrimSpace(string(out)))
	}
	return nil
}

// vimPlugStep fetches plug.vim into the nvim autoload directory
type vimPlugStep struct {
	dest string
}

func (s *vimPlugStep) Name() string { return "vim-plug" }

func (s *vimPlugStep) Check(_ context.Context) (bool, error) {
	_, err := os.Stat(s.dest)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *vimPlugStep) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "curl", "-fLo", s.dest, "--create-dirs", vimPlugURL)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrap(err, errors.ErrStepExecute, "vim-plug download failed").
			WithDetail("output", strings.TrimSpace(string(out)))
	}
	return nil
}

// starshipStep installs the starship prompt via its upstream installer
type starshipStep struct{}

func (s *starshipStep) Name() string { return "starship" }

func (s *starshipStep) Check(_ context.Context) (bool, error) {
	_, err := exec.LookPath("starship")
	return err == nil, nil
}

func (s *starshipStep) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", "curl -sS "+starshipScript+" | sh -s -- --yes")
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrap(err, errors.ErrStepExecute, "starship install failed").
			WithDetail("output", strings.TrimSpace(string(out)))
	}
	return nil
}

// defaultShellStep changes the login shell with chsh under a fixed
// timeout; chsh may prompt for a password and hang in non-interactive
// runs
type defaultShellStep struct {
	shell   string
	timeout time.Duration
}

func (s *defaultShellStep) Name() string { return "default-shell" }

func (s *defaultShellStep) Check(_ context.Context) (bool, error) {
	current := os.Getenv("SHELL")
	return strings.HasSuffix(current, "/"+s.shell) || current == s.shell, nil
}

func (s *defaultShellStep) Run(ctx context.Context) error {
	shellPath, err := exec.LookPath(s.shell)
	if err != nil {
		return errors.Wrapf(err, errors.ErrToolMissing, "shell %q not found in PATH", s.shell)
	}

	timeout := s.timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "chsh", "-s", shellPath)
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return errors.New(errors.ErrStepTimeout, "chsh timed out")
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrStepExecute, "chsh failed").
			WithDetail("output", strings.TrimSpace(string(out)))
	}
	return nil
}
