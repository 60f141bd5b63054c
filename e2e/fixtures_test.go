//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const fruitYAML = `- _id: apple
  name: Apple
- _id: banana
  name: Banana
- _id: cherry
  name: Cherry
- _id: durian
  name: Durian
  disabled: true
`

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFile creates a file in the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, contents string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// StartWithFruit creates a workspace holding fruit.yaml and starts the app on it
func (tf *TUITestFramework) StartWithFruit(args ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	path, err := tf.WriteFile("fruit.yaml", fruitYAML)
	if err != nil {
		return err
	}
	return tf.StartApp(append([]string{path}, args...)...)
}
