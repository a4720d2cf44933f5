package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wikicorpus/internal/wiki"
)

// Job describes one harvest run: which categories to walk, how deep,
// which seed articles anchor the similarity scoring, and where results
// land.
type Job struct {
	Lang       string   `yaml:"lang"`
	Categories []string `yaml:"categories"`
	Depth      int      `yaml:"depth"`
	Namespace  string   `yaml:"namespace"`
	Seeds      []string `yaml:"seeds"`

	// CutHeadings are section headings stripped from every article
	// before heading statistics ("References", "External links", ...).
	CutHeadings []string `yaml:"cut_headings"`

	TopHeadings    int    `yaml:"top_headings"`
	MaxConcurrency int    `yaml:"max_concurrency"`
	OutputDir      string `yaml:"output_dir"`
}

// LoadJob reads and validates a job file, filling defaults.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}

	job.applyDefaults()
	if err := job.validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

func (j *Job) applyDefaults() {
	if j.Lang == "" {
		j.Lang = "en"
	}
	if j.Depth == 0 {
		j.Depth = 1
	}
	if j.Namespace == "" {
		j.Namespace = "main"
	}
	if j.TopHeadings == 0 {
		j.TopHeadings = 20
	}
	if j.OutputDir == "" {
		j.OutputDir = "out"
	}
}

func (j *Job) validate() error {
	if len(j.Categories) == 0 {
		return fmt.Errorf("job: at least one category is required")
	}
	if j.Depth < 1 {
		return fmt.Errorf("job: depth must be at least 1, got %d", j.Depth)
	}
	if _, err := j.namespace(); err != nil {
		return err
	}
	return nil
}

func (j *Job) namespace() (wiki.Namespace, error) {
	switch j.Namespace {
	case "main":
		return wiki.NamespaceMain, nil
	case "category":
		return wiki.NamespaceCategory, nil
	case "template":
		return wiki.NamespaceTemplate, nil
	default:
		return 0, fmt.Errorf("job: unknown namespace %q (want main, category, or template)", j.Namespace)
	}
}
