package config

// Reqsfile represents the structure of the reqs.yaml project file.
type Reqsfile struct {
	Name         string       `yaml:"name"`
	Version      string       `yaml:"version"`
	Author       string       `yaml:"author"`
	AuthorEmail  string       `yaml:"author_email"`
	Requirements string       `yaml:"requirements"`
	Newline      string       `yaml:"newline"`
	Packages     *PackagesDTO `yaml:"packages"`
}

// PackagesDTO represents the package discovery section of the project file.
type PackagesDTO struct {
	Root    string   `yaml:"root"`
	Exclude []string `yaml:"exclude"`
}
