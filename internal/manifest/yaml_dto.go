package manifest

type YAMLManifest struct {
	Workers int       `yaml:"workers"`
	Jobs    []YAMLJob `yaml:"jobs"`
}

type YAMLJob struct {
	Name   string   `yaml:"name"`
	Input  string   `yaml:"input"`
	Output string   `yaml:"output"`
	Ops    []string `yaml:"ops"`
}
