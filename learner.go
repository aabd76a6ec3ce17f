package smarty

import "context"

// LearnRequest carries the parameters of one learn operation. Exactly one
// source kind is chosen by the front end before the request is constructed.
type LearnRequest struct {
	Topic       string
	Subtopic    string
	Source      Source
	ProjectRoot string
}

// Validate returns an error if the request cannot be processed.
func (r LearnRequest) Validate() error {
	if err := ValidateName(r.Topic); err != nil {
		return Errorf(EINVALID, "topic: %s", ErrorMessage(err))
	}
	if err := ValidateName(r.Subtopic); err != nil {
		return Errorf(EINVALID, "subtopic: %s", ErrorMessage(err))
	}
	return r.Source.Validate()
}

// Learner runs the resolve→fetch→convert→store pipeline for one request.
type Learner interface {
	// Learn fetches, converts, and stores the requested documentation,
	// returning the absolute path of the stored markdown file.
	Learn(ctx context.Context, req LearnRequest) (string, error)
}
