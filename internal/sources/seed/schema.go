package seed

// File is the root structure of a seed file:
//
//	links:
//	  - url: https://go.dev
//	    title: Go
//	    description: The Go website
type File struct {
	Links []Link `yaml:"links"`
}

// Link is one entry. Pointers keep "absent" apart from "empty".
type Link struct {
	URL         string  `yaml:"url"`
	Title       *string `yaml:"title"`
	Description *string `yaml:"description,omitempty"`
}
