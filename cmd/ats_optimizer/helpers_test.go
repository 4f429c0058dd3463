package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testResume = `Jane Doe
jane@example.com | (555) 123-4567

Summary
Backend engineer building Go services and Kubernetes platforms.

Experience
Senior Engineer, Acme Corp
- Built Go microservices serving 2M requests per day
- Led migration of 40 services to Kubernetes, reducing cost by 30%

Skills
Go, Kubernetes, Docker, PostgreSQL

Education
B.S. Computer Science`

const testJob = `We are hiring a backend engineer. Required: Go, Kubernetes and Terraform.
You will design distributed systems on AWS, own observability with Prometheus,
and mentor engineers. Experience with PostgreSQL and Kafka is a plus.`

// writeTemp writes content to name in a fresh temp dir and returns its path.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the CLI with args and returns stdout and stderr. Flags left
// over from earlier runs are reset first.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
