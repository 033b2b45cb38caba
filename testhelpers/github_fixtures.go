package testhelpers

import (
	"github.com/google/go-github/v62/github"
)

// SampleRepoData holds the fields used to build repository fixtures
type SampleRepoData struct {
	Owner   string
	Name    string
	Private bool
}

// NewSampleRepository creates a repository object for mock server listings
func NewSampleRepository(data SampleRepoData) *github.Repository {
	fullName := data.Owner + "/" + data.Name
	return &github.Repository{
		Name:     github.String(data.Name),
		FullName: github.String(fullName),
		Private:  github.Bool(data.Private),
	}
}

// PublicRepoData returns fixture data for a public repository
func PublicRepoData(name string) SampleRepoData {
	return SampleRepoData{Owner: "octocat", Name: name, Private: false}
}

// PrivateRepoData returns fixture data for a private repository
func PrivateRepoData(name string) SampleRepoData {
	return SampleRepoData{Owner: "octocat", Name: name, Private: true}
}

// SampleFileTree returns a small repository tree used by listing and
// download tests: a README plus nested files two levels deep.
func SampleFileTree() map[string]string {
	return map[string]string{
		"README.md":         "# hello\n",
		"docs/guide.md":     "guide\n",
		"docs/img/logo.txt": "logo\n",
		"src/main.go":       "package main\n",
	}
}
