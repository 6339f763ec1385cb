// Package util is a grab bag of file helpers for config, logs and job data.
package util

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	nt "furrow/entity"
)

// OpenLog opens path for appending, or discards when path is empty.
func OpenLog(path string, mode os.FileMode) (file io.Writer, err error) {

	if path == "" {
		file = io.Discard
		return
	}

	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		file = io.Discard
		err = errors.Wrapf(err, "failed to open log")
	}
	return
}

// CloseLog closes a log opened by OpenLog.
func CloseLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok {
		actually.Close()
	}
}

// LoadConfig unmarshals the yaml at path into cfg.
func LoadConfig(cfg any, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	err = yaml.Unmarshal(data, cfg)
	err = errors.Wrapf(err, "failed to unmarshal config from %s", path)
	return
}

// WriteYaml marshals v to path.
func WriteYaml(v any, path string, mode os.FileMode) (err error) {

	data, err := yaml.Marshal(v)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal")
		return
	}

	err = os.WriteFile(path, data, mode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}

// SampleConfig writes cfg to path unless a file is already there.
func SampleConfig(cfg any, path string, mode os.FileMode) (written bool, err error) {

	_, err = os.Stat(path)
	if err == nil {
		return // already have a cfg
	}
	if !os.IsNotExist(err) {
		err = errors.Wrapf(err, "failed to stat %s", path)
		return
	}

	err = WriteYaml(cfg, path, mode)
	written = err == nil
	return
}

// LoadJobs reads jobs from a yaml or json file.
func LoadJobs(path string) (jobs []nt.Job, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read jobs from %s", path)
		return
	}

	err = yaml.Unmarshal(data, &jobs)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal jobs from %s", path)
		return
	}

	for i, job := range jobs {
		if job.ID == "" {
			err = errors.Errorf("job %d in %s has no id", i, path)
			return
		}
	}
	return
}
