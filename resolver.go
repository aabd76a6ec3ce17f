package smarty

import (
	"net/url"
	"strings"
)

// ActionKind identifies a retrieval method.
type ActionKind int

// Retrieval methods.
const (
	// ActionHTTPGet performs an HTTP GET on Target (a URL).
	ActionHTTPGet ActionKind = iota

	// ActionManPage reads the man page source named by Target.
	ActionManPage

	// ActionGoDoc runs the local Go documentation tool on Target (a package path).
	ActionGoDoc
)

// Action is a single concrete retrieval step.
type Action struct {
	Kind   ActionKind
	Target string
}

// ContentKind returns the kind of content the action produces.
func (a Action) ContentKind() ContentKind {
	switch a.Kind {
	case ActionManPage:
		return KindMan
	case ActionGoDoc:
		return KindText
	default:
		return KindHTML
	}
}

// FetchPlan is the resolved retrieval strategy for one source descriptor.
// Fallback, when non-nil, is attempted only after Primary fails.
type FetchPlan struct {
	Primary  Action
	Fallback *Action
}

// Resolve maps a source descriptor to a concrete fetch plan. It is a pure
// function: no I/O, no tool probing. Unresolvable descriptors return
// EINVALID; a synthesized URL failing validation is EINTERNAL because it
// indicates a bug in the synthesis rule, not bad user input.
func Resolve(src Source) (FetchPlan, error) {
	if err := src.Validate(); err != nil {
		return FetchPlan{}, err
	}

	switch src.Kind {
	case SourceWeb:
		if !isAbsoluteURL(src.Value) {
			return FetchPlan{}, Errorf(EINVALID, "web source must be an absolute URL, got %q", src.Value)
		}
		return httpPlan(src.Value), nil

	case SourceMan:
		return FetchPlan{Primary: Action{Kind: ActionManPage, Target: src.Value}}, nil

	case SourceJavadoc:
		// A 3-part Maven coordinate (group:artifact:version) maps to
		// javadoc.io; anything else is treated as a literal URL. The URL
		// check runs first since URLs also contain colons.
		if isAbsoluteURL(src.Value) {
			return httpPlan(src.Value), nil
		}
		if parts := strings.Split(src.Value, ":"); len(parts) == 3 {
			return synthesizedHTTPPlan("https://javadoc.io/doc/" + parts[0] + "/" + parts[1] + "/" + parts[2])
		}
		return FetchPlan{}, Errorf(EINVALID, "javadoc source must be group:artifact:version or a URL, got %q", src.Value)

	case SourceSphinx:
		if isAbsoluteURL(src.Value) {
			return httpPlan(src.Value), nil
		}
		return synthesizedHTTPPlan("https://" + src.Value + ".readthedocs.io/en/latest/")

	case SourceGodoc:
		if isAbsoluteURL(src.Value) {
			return httpPlan(src.Value), nil
		}
		plan, err := synthesizedHTTPPlan("https://pkg.go.dev/" + src.Value)
		if err != nil {
			return FetchPlan{}, err
		}
		fallback := plan.Primary
		return FetchPlan{
			Primary:  Action{Kind: ActionGoDoc, Target: src.Value},
			Fallback: &fallback,
		}, nil

	case SourceRustdoc:
		if isAbsoluteURL(src.Value) {
			return httpPlan(src.Value), nil
		}
		return synthesizedHTTPPlan("https://docs.rs/" + src.Value)

	default:
		return FetchPlan{}, Errorf(EINVALID, "unknown source kind %d", src.Kind)
	}
}

func httpPlan(target string) FetchPlan {
	return FetchPlan{Primary: Action{Kind: ActionHTTPGet, Target: target}}
}

func synthesizedHTTPPlan(target string) (FetchPlan, error) {
	if !isAbsoluteURL(target) {
		return FetchPlan{}, Errorf(EINTERNAL, "synthesized malformed URL %q", target)
	}
	return httpPlan(target), nil
}

// isAbsoluteURL reports whether s is a well-formed http(s) URL with a host.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
