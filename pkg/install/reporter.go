package install

import (
	"context"
	"strings"

	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/logging"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/muffin-cms/muffin/pkg/ui/output"
	"github.com/rs/zerolog"
)

// DefaultBenignPattern marks installer output that only complains about
// the template's unpublished placeholder package.
const DefaultBenignPattern = "example@1.0.0"

// Messages shown by the reporter.
const (
	MsgInstalling    = "Installing missing packages via npm"
	MsgInstalled     = "Installed packages"
	MsgInstallFailed = "Not able to install dependencies!"
	MsgGenerated     = "Generated new site in "
)

// Reporter runs the final installation step and announces the result.
type Reporter struct {
	installer Installer
	benign    string
	ui        output.UI
	logger    zerolog.Logger
}

// NewReporter creates a Reporter. An empty benign pattern selects
// DefaultBenignPattern.
func NewReporter(installer Installer, benign string, ui output.UI) *Reporter {
	if benign == "" {
		benign = DefaultBenignPattern
	}
	return &Reporter{
		installer: installer,
		benign:    benign,
		ui:        ui,
		logger:    logging.GetLogger("install.reporter"),
	}
}

// Succeeded decides whether an installer run counts as success: a clean
// exit, or output containing the benign pattern.
func (r *Reporter) Succeeded(res types.InstallResult) bool {
	if res.ExitErr == nil {
		return true
	}
	return strings.Contains(res.Stdout, r.benign) || strings.Contains(res.Stderr, r.benign)
}

// Complete installs dependencies into targetDir unless skip is set, then
// reports. On installer failure the returned error has code
// INSTALLATION_FAILURE and carries the installer's stderr.
func (r *Reporter) Complete(ctx context.Context, targetDir string, skip bool) (types.InstallResult, error) {
	if skip {
		r.logger.Info().Str("target", targetDir).Msg("Skipping dependency installation")
		r.ui.Success(MsgGenerated + targetDir)
		return types.InstallResult{}, nil
	}

	spinner := r.ui.Start(MsgInstalling)

	res, err := r.installer.Install(ctx, targetDir)
	if err != nil {
		spinner.Fail(MsgInstallFailed)
		return res, errors.Wrap(err, errors.ErrInstallation, "dependency installation failed").
			WithDetail("dir", targetDir)
	}

	if !r.Succeeded(res) {
		spinner.Fail(MsgInstallFailed)
		if res.Stderr != "" {
			r.ui.Info(res.Stderr)
		}
		return res, errors.Wrap(res.ExitErr, errors.ErrInstallation, "dependency installation failed").
			WithDetail("dir", targetDir).
			WithDetail("stderr", res.Stderr)
	}

	spinner.Success(MsgInstalled)
	r.ui.Success(MsgGenerated + targetDir)
	return res, nil
}
