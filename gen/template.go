package gen

import "text/template"

//nolint:gochecknoglobals
var machineTemplate = template.Must(template.New("machine").Parse(machineTemplateText))

const machineTemplateText = `// Code generated by fsmgen. DO NOT EDIT.
//
// Machine: {{.Machine}} (graph fingerprint {{.Fingerprint}})

package {{.Package}}

import (
	"time"

	"github.com/amp-labs/staticfsm"
{{- if .NeedsOptional}}
	"github.com/amp-labs/staticfsm/optional"
{{- end}}
)

// {{.TagType}} identifies which state a {{.Machine}} currently occupies.
type {{.TagType}} int

const (
{{- range $i, $s := .States}}
	{{$s.Tag}}{{if eq $i 0}} {{$.TagType}} = iota{{end}}
{{- end}}
)

// String returns the declared state name.
func (s {{.TagType}}) String() string {
	switch s {
{{- range $s := .States}}
	case {{$s.Tag}}:
		return "{{$s.Name}}"
{{- end}}
	default:
		return "unknown"
	}
}

// {{.Machine}} holds every declared state by value and drives the declared
// graph. Exactly one state is live at a time, selected by the tag. The zero
// value is not usable; construct instances with New{{.Machine}}.
type {{.Machine}} struct {
	tag {{.TagType}}

{{- range $s := .States}}
	{{$s.Field}} {{$s.Name}}
{{- end}}

	entryPending bool
	stopped      bool
	observer     staticfsm.Observer
}

// New{{.Machine}} creates a machine occupying initial as its current state.
func New{{.Machine}}(initial {{.InitialType}}, opts ...staticfsm.Option) {{.Machine}} {
	cfg := staticfsm.NewConfig(opts...)

	return {{.Machine}}{
		tag:          {{.InitialTag}},
		{{.InitialField}}:   initial,
		entryPending: cfg.InitialEntry({{.RunInitialEntry}}),
		observer:     cfg.Observer(),
	}
}

// Step advances the machine by one unit of progress: run the current
// state's Execute, then evaluate its outgoing guards in declaration order
// and fire at most the first satisfied transition, hooks inline. A step on
// a stopped machine does nothing.
func (m *{{.Machine}}) Step() {
	if m.stopped {
		return
	}

	var start time.Time
	if m.observer != nil {
		start = time.Now()
		m.observer.StepStarted("{{.Machine}}", m.tag.String())
	}

	transitioned := false

	switch m.tag {
{{- range $s := .States}}
	case {{$s.Tag}}:
		if m.entryPending {
			m.entryPending = false
			m.{{$s.Field}}.OnEntry()

			if m.observer != nil {
				m.observer.StateEntered("{{$.Machine}}", "{{$s.Name}}")
			}
		}

		m.{{$s.Field}}.Execute()
{{- range $i, $e := $s.Edges}}
{{- if eq $i 0}}

		if m.{{$s.Field}}.{{$e.Guard}}() == staticfsm.Transit {
{{- else}}
		} else if m.{{$s.Field}}.{{$e.Guard}}() == staticfsm.Transit {
{{- end}}
			m.{{$s.Field}}.OnExit()

			if m.observer != nil {
				m.observer.StateExited("{{$.Machine}}", "{{$s.Name}}")
			}

			next := m.{{$s.Field}}.{{$e.Into}}()
			m.{{$s.Field}} = {{$s.Name}}{}
			m.{{$e.ToField}} = next
			m.tag = {{$e.ToTag}}
			transitioned = true

			if m.observer != nil {
				m.observer.TransitionFired("{{$.Machine}}", "{{$s.Name}}", "{{$e.To}}")
			}

			m.{{$e.ToField}}.OnEntry()

			if m.observer != nil {
				m.observer.StateEntered("{{$.Machine}}", "{{$e.To}}")
			}
{{- end}}
{{- if $s.Edges}}
		}
{{- end}}
{{- end}}
	}

	if m.observer != nil {
		m.observer.StepCompleted("{{.Machine}}", m.tag.String(), transitioned, time.Since(start))
	}
}

// Stop runs OnExit on the live state without firing a transition, for
// orderly shutdown. Stopping is terminal: later Step and Stop calls do
// nothing, and message routes report their state as not active.
func (m *{{.Machine}}) Stop() {
	if m.stopped {
		return
	}

	switch m.tag {
{{- range $s := .States}}
	case {{$s.Tag}}:
		m.{{$s.Field}}.OnExit()
{{- end}}
	}

	m.stopped = true

	if m.observer != nil {
		m.observer.StateExited("{{.Machine}}", m.tag.String())
	}
}

// PeekState reports which state is live without exposing the state value.
func (m *{{.Machine}}) PeekState() {{.TagType}} {
	return m.tag
}

// Is reports whether the machine currently occupies s.
func (m *{{.Machine}}) Is(s {{.TagType}}) bool {
	return m.tag == s
}
{{- range $p := .Pushes}}

// {{$p.Method}} delivers msg to the {{$p.State}} state. It fails with
// staticfsm.ErrStateNotActive when {{$p.State}} is not the live state.
func (m *{{$.Machine}}) {{$p.Method}}(msg {{$p.Payload}}) error {
	if m.stopped || m.tag != {{$p.Tag}} {
		return &staticfsm.RouteError{Machine: "{{$.Machine}}", State: "{{$p.State}}", Err: staticfsm.ErrStateNotActive}
	}

	m.{{$p.Field}}.{{$p.Receive}}(msg)

	return nil
}
{{- end}}
{{- range $p := .Polls}}

// {{$p.Method}} takes one buffered {{$p.Payload}} out of the {{$p.State}}
// state. It fails with staticfsm.ErrStateNotActive when {{$p.State}} is not
// the live state and returns None when nothing is buffered.
func (m *{{$.Machine}}) {{$p.Method}}() (optional.Value[{{$p.Payload}}], error) {
	if m.stopped || m.tag != {{$p.Tag}} {
		return optional.None[{{$p.Payload}}](), &staticfsm.RouteError{Machine: "{{$.Machine}}", State: "{{$p.State}}", Err: staticfsm.ErrStateNotActive}
	}

	return m.{{$p.Field}}.{{$p.Return}}(), nil
}
{{- end}}
`
