package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sivchari/calc/internal/eval"
	"github.com/sivchari/calc/internal/report"
)

func (a *app) operationCmds() []*cobra.Command {
	ops := eval.Operations()
	cmds := make([]*cobra.Command, 0, len(ops))

	for _, op := range ops {
		op := op // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loop semantics)

		cmds = append(cmds, &cobra.Command{
			Use:   op.Name + " " + usageArgs(op),
			Short: op.Short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, op.Name, args)
			},
		})
	}

	return cmds
}

func (a *app) run(cmd *cobra.Command, name string, args []string) error {
	defer func() { _ = a.logger.Sync() }()

	a.logger.Debug("Evaluating operation", zap.String("operation", name), zap.Strings("args", args))

	result, evalErr := eval.Evaluate(name, args)
	if evalErr != nil {
		a.logger.Warn("Evaluation failed", zap.String("operation", name), zap.Error(evalErr))
	}

	generator, err := report.New(a.cfg, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to create reporter: %w", err)
	}

	if err := generator.Generate(result); err != nil {
		return err
	}

	if evalErr != nil {
		return fmt.Errorf("%s failed: %w", name, evalErr)
	}

	a.logger.Debug("Operation completed", zap.String("operation", name), zap.Any("value", result.Value))

	return nil
}

func usageArgs(op eval.Operation) string {
	arg := "<" + string(op.Kind) + ">"

	switch {
	case op.MaxArgs < 0:
		return "[" + arg + "...]"
	case op.MinArgs == 1:
		return arg
	default:
		return arg + " " + arg
	}
}
