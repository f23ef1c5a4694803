// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// JSONLoader decodes .json files.
type JSONLoader struct{}

func (JSONLoader) Name() string         { return "json" }
func (JSONLoader) Extensions() []string { return []string{"json"} }

func (JSONLoader) Load(_ context.Context, fs afero.Fs, path string) (map[string]any, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return asTree(v)
}

// YAMLLoader decodes .yaml and .yml files.
type YAMLLoader struct{}

func (YAMLLoader) Name() string         { return "yaml" }
func (YAMLLoader) Extensions() []string { return []string{"yaml", "yml"} }

func (YAMLLoader) Load(_ context.Context, fs afero.Fs, path string) (map[string]any, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return asTree(v)
}

// TOMLLoader decodes .toml files.
type TOMLLoader struct{}

func (TOMLLoader) Name() string         { return "toml" }
func (TOMLLoader) Extensions() []string { return []string{"toml"} }

func (TOMLLoader) Load(_ context.Context, fs afero.Fs, path string) (map[string]any, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return asTree(v)
}

// CUELoader evaluates .cue files. Every field must be concrete.
type CUELoader struct{}

func (CUELoader) Name() string         { return "cue" }
func (CUELoader) Extensions() []string { return []string{"cue"} }

func (CUELoader) Load(_ context.Context, fs afero.Fs, path string) (map[string]any, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	value := cuecontext.New().CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, err
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, err
	}

	var v map[string]any
	if err := value.Decode(&v); err != nil {
		return nil, err
	}
	return asTree(v)
}

// DotenvLoader reads KEY=value files (.env). All values are strings and are
// coerced by the schema afterwards.
type DotenvLoader struct{}

func (DotenvLoader) Name() string         { return "dotenv" }
func (DotenvLoader) Extensions() []string { return []string{"env"} }

func (DotenvLoader) Load(_ context.Context, fs afero.Fs, path string) (map[string]any, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parsed, err := godotenv.Parse(f)
	if err != nil {
		return nil, err
	}

	tree := make(map[string]any, len(parsed))
	for k, v := range parsed {
		tree[k] = v
	}
	return tree, nil
}

// ExecLoader runs an executable source and decodes its standard output as
// JSON. The file is executed from the host filesystem regardless of fs.
type ExecLoader struct {
	// Env is appended to the child process environment.
	Env []string
}

func (ExecLoader) Name() string         { return "exec" }
func (ExecLoader) Extensions() []string { return []string{"sh"} }

func (l ExecLoader) Load(ctx context.Context, _ afero.Fs, path string) (map[string]any, error) {
	// A bare relative name would go through a PATH lookup instead of
	// running the file in the configuration directory.
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecFailed, err)
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, abs)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if len(l.Env) > 0 {
		cmd.Env = append(cmd.Environ(), l.Env...)
	}

	if err = cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %v: %s", ErrExecFailed, err, strings.TrimSpace(stderr.String()))
	}

	var v any
	if err = json.Unmarshal(stdout.Bytes(), &v); err != nil {
		return nil, fmt.Errorf("decoding stdout: %w", err)
	}
	return asTree(v)
}
