// generate-binds scaffolds Web API method bindings from a TOML manifest:
//
//	family = "conversations"
//
//	[[method]]
//	name = "rename"
//
//	[[method.arg]]
//	name = "channel"
//	required = true
//
//	[[method.arg]]
//	name = "name"
//	required = true
//
// Each method becomes pkg/<family>/<name>.go carrying the request struct,
// the ordered params builder, the envelope-embedding response and the sync
// and async call forms. Argument types are string (the default), bool and
// uint32. Existing files are never overwritten; response payload fields and
// doc comments are meant to be finished by hand.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
)

type manifest struct {
	Family  string   `toml:"family"`
	Methods []method `toml:"method"`
}

type method struct {
	Name string `toml:"name"`
	Args []arg  `toml:"arg"`
}

type arg struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Required bool   `toml:"required"`
}

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: generate-binds <manifest.toml>")
	}

	var m manifest
	if _, err := toml.DecodeFile(os.Args[1], &m); err != nil {
		log.Fatalf("Failed to read manifest: %v", err)
	}
	if m.Family == "" {
		log.Fatalf("Manifest has no family name")
	}

	root, err := moduleRoot()
	if err != nil {
		log.Fatalf("Failed to locate module root: %v", err)
	}

	outDir := filepath.Join(root, "pkg", m.Family)
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		log.Fatalf("Failed to create %s: %v", outDir, err)
	}

	for _, meth := range m.Methods {
		outPath := filepath.Join(outDir, meth.Name+".go")
		if _, statErr := os.Stat(outPath); statErr == nil {
			log.Printf("skip %s: file exists", outPath)
			continue
		}
		src, err := render(m.Family, meth)
		if err != nil {
			log.Fatalf("Failed to generate %s.%s: %v", m.Family, meth.Name, err)
		}
		if err := os.WriteFile(outPath, src, 0o600); err != nil {
			log.Fatalf("Failed to write binding: %v", err)
		}
		log.Printf("wrote %s", outPath)
	}
}

type argView struct {
	Name     string
	Field    string
	Type     string
	Required bool
}

type bindView struct {
	Family       string
	Method       string
	Export       string
	Unexport     string
	Args         []argView
	NeedsStrconv bool
}

func render(family string, meth method) ([]byte, error) {
	if meth.Name == "" {
		return nil, fmt.Errorf("method without a name")
	}
	view := bindView{
		Family:   family,
		Method:   meth.Name,
		Export:   export(meth.Name),
		Unexport: unexport(export(meth.Name)),
	}
	for _, a := range meth.Args {
		typ := a.Type
		if typ == "" {
			typ = "string"
		}
		switch typ {
		case "string", "bool", "uint32":
		default:
			return nil, fmt.Errorf("argument %q: unsupported type %q", a.Name, typ)
		}
		if typ == "uint32" {
			view.NeedsStrconv = true
		}
		view.Args = append(view.Args, argView{
			Name:     a.Name,
			Field:    export(a.Name),
			Type:     typ,
			Required: a.Required,
		})
	}

	var buf bytes.Buffer
	if err := bindTemplate.Execute(&buf, view); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

// export turns a wire name into an exported Go identifier:
// "exclude_archived" becomes "ExcludeArchived", "setPurpose" "SetPurpose".
func export(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}

func unexport(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, statErr := os.Stat(filepath.Join(dir, "go.mod")); statErr == nil {
			return dir, nil
		}
		next := filepath.Dir(dir)
		if next == dir {
			return "", fmt.Errorf("go.mod not found from %q", dir)
		}
		dir = next
	}
}

var bindTemplate = template.Must(template.New("bind").Parse(`// Scaffolded by generate-binds; finish the response payload and docs by hand.

package {{.Family}}

import (
	"context"
{{- if .NeedsStrconv}}
	"strconv"
{{- end}}

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)
{{if .Args}}
// {{.Export}}Request carries the arguments of {{.Family}}.{{.Method}}.
type {{.Export}}Request struct {
{{- range .Args}}
	{{.Field}} {{if not .Required}}*{{end}}{{.Type}}
{{- end}}
}

func {{.Unexport}}Params(token string, req *{{.Export}}Request) []requests.Param {
	params := []requests.Param{{"{{"}}Name: "token", Value: token{{"}}"}}
	if req == nil {
		return params
	}
{{- range .Args}}
{{- if .Required}}
{{- if eq .Type "string"}}
	params = append(params, requests.Param{Name: "{{.Name}}", Value: req.{{.Field}}})
{{- else if eq .Type "bool"}}
	if req.{{.Field}} {
		params = append(params, requests.Param{Name: "{{.Name}}", Value: "1"})
	} else {
		params = append(params, requests.Param{Name: "{{.Name}}", Value: "0"})
	}
{{- else}}
	params = append(params, requests.Param{Name: "{{.Name}}", Value: strconv.FormatUint(uint64(req.{{.Field}}), 10)})
{{- end}}
{{- else}}
	if req.{{.Field}} != nil {
{{- if eq .Type "string"}}
		params = append(params, requests.Param{Name: "{{.Name}}", Value: *req.{{.Field}}})
{{- else if eq .Type "bool"}}
		v := "0"
		if *req.{{.Field}} {
			v = "1"
		}
		params = append(params, requests.Param{Name: "{{.Name}}", Value: v})
{{- else}}
		params = append(params, requests.Param{Name: "{{.Name}}", Value: strconv.FormatUint(uint64(*req.{{.Field}}), 10)})
{{- end}}
	}
{{- end}}
{{- end}}
	return params
}
{{else}}
func {{.Unexport}}Params(token string) []requests.Param {
	return []requests.Param{{"{{"}}Name: "token", Value: token{{"}}"}}
}
{{end}}
// {{.Export}}Response is the {{.Family}}.{{.Method}} payload.
type {{.Export}}Response struct {
	api.Envelope
}

// {{.Export}} wraps the {{.Family}}.{{.Method}} Web API method:
// https://api.slack.com/methods/{{.Family}}.{{.Method}}
func {{.Export}}(ctx context.Context, client requests.Sender, token string{{if .Args}}, req *{{.Export}}Request{{end}}) (*{{.Export}}Response, error) {
	body, err := client.Send(ctx, api.MethodURL("{{.Family}}.{{.Method}}"), {{.Unexport}}Params(token{{if .Args}}, req{{end}}))
	if err != nil {
		return nil, &api.TransportError{Err: err}
	}
	resp := &{{.Export}}Response{}
	if err := api.ParseResponse(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// {{.Export}}Result delivers the outcome of {{.Export}}Async. Exactly one of
// Response and Err is set.
type {{.Export}}Result struct {
	Response *{{.Export}}Response
	Err      error
}

// {{.Export}}Async is {{.Export}} over an AsyncSender: same parameters, same
// failure classification, delivered on the returned channel. The channel
// carries a single {{.Export}}Result and is then closed.
func {{.Export}}Async(ctx context.Context, client requests.AsyncSender, token string{{if .Args}}, req *{{.Export}}Request{{end}}) <-chan {{.Export}}Result {
	out := make(chan {{.Export}}Result, 1)
	go func() {
		defer close(out)
		res := <-client.SendAsync(ctx, api.MethodURL("{{.Family}}.{{.Method}}"), {{.Unexport}}Params(token{{if .Args}}, req{{end}}))
		if res.Err != nil {
			out <- {{.Export}}Result{Err: &api.TransportError{Err: res.Err}}
			return
		}
		resp := &{{.Export}}Response{}
		if err := api.ParseResponse(res.Body, resp); err != nil {
			out <- {{.Export}}Result{Err: err}
			return
		}
		out <- {{.Export}}Result{Response: resp}
	}()
	return out
}
`))
