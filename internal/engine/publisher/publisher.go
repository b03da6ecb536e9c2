// Package publisher runs the registry steps of a single package.
package publisher

import (
	"context"
	"fmt"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Publisher drives a package through check, package and publish.
type Publisher struct {
	registry  ports.Registry
	reporter  ports.Reporter
	telemetry ports.Telemetry
}

// New creates a Publisher.
func New(registry ports.Registry, reporter ports.Reporter, telemetry ports.Telemetry) *Publisher {
	return &Publisher{
		registry:  registry,
		reporter:  reporter,
		telemetry: telemetry,
	}
}

// Publish runs the steps for pkg in order and stops at the first failure.
// Steps are never retried.
func (p *Publisher) Publish(ctx context.Context, pkg domain.Package, opts domain.RunOptions) domain.PackageResult {
	p.reporter.PackageStarted(pkg)

	for _, op := range domain.Steps(opts.DryRun) {
		if diagnostic, ok := p.step(ctx, pkg, op, opts.Registry); !ok {
			p.reporter.StepFailed(pkg, op, diagnostic)
			return domain.PackageResult{
				Name:       pkg.Name,
				State:      domain.PackageFailed,
				FailedStep: op,
				Diagnostic: diagnostic,
			}
		}
	}

	p.reporter.PackageSucceeded(pkg, opts.DryRun)
	return domain.PackageResult{Name: pkg.Name, State: domain.PackageSucceeded}
}

// step runs a single operation and returns the diagnostic when it failed.
func (p *Publisher) step(
	ctx context.Context,
	pkg domain.Package,
	op domain.Operation,
	cfg domain.RegistryConfig,
) (string, bool) {
	if err := ctx.Err(); err != nil {
		return err.Error(), false
	}

	vctx, vertex := p.telemetry.Record(ctx, fmt.Sprintf("%s %s", op, pkg.Name))

	inv, err := p.registry.Invoke(vctx, cfg, pkg, op)
	if inv.Stderr != "" {
		_, _ = vertex.Stderr().Write([]byte(inv.Stderr))
	}
	if err != nil {
		vertex.Complete(err)
		if inv.Stderr != "" {
			return inv.Stderr, false
		}
		return err.Error(), false
	}

	if !inv.Succeeded() {
		vertex.Log(domain.LogLevelError, fmt.Sprintf("exited with code %d", inv.ExitCode))
		failure := zerr.With(zerr.With(domain.ErrStepFailed, "step", string(op)), "exit_code", inv.ExitCode)
		vertex.Complete(failure)
		return inv.Stderr, false
	}

	vertex.Complete(nil)
	return "", true
}
