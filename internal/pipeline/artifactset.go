package pipeline

// Artifact is one generated section of the output document.
type Artifact struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// ArtifactSet is an insertion-ordered mapping from heading to generated
// text. A duplicate heading overwrites its predecessor's body in place, so
// headings are the unique identity of an artifact.
type ArtifactSet struct {
	artifacts []Artifact
	index     map[string]int
}

// NewArtifactSet creates an empty ArtifactSet.
func NewArtifactSet() *ArtifactSet {
	return &ArtifactSet{index: make(map[string]int)}
}

// Set stores a body under a heading. A repeated heading keeps the position
// of its first occurrence and takes the latest body.
func (s *ArtifactSet) Set(heading, body string) {
	if i, ok := s.index[heading]; ok {
		s.artifacts[i].Body = body
		return
	}
	s.index[heading] = len(s.artifacts)
	s.artifacts = append(s.artifacts, Artifact{Heading: heading, Body: body})
}

// Get returns the body stored under a heading.
func (s *ArtifactSet) Get(heading string) (string, bool) {
	i, ok := s.index[heading]
	if !ok {
		return "", false
	}
	return s.artifacts[i].Body, true
}

// Artifacts returns all artifacts in insertion order.
func (s *ArtifactSet) Artifacts() []Artifact {
	out := make([]Artifact, len(s.artifacts))
	copy(out, s.artifacts)
	return out
}

// Len returns the number of distinct headings.
func (s *ArtifactSet) Len() int {
	return len(s.artifacts)
}
