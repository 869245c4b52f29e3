// Package catalog knows which record each web-service function answers with, grouped by the
// component that provides the function.
package catalog

import (
	"fmt"
	"moodle/internal/codec"
	"moodle/internal/mdlerrors"
	"moodle/internal/models"
	"sort"
	"strings"
)

// Component is the plugin type a function belongs to, taken from the function name prefix.
type Component string

const (
	Auth        Component = "auth"
	Core        Component = "core"
	Enrol       Component = "enrol"
	GradeReport Component = "gradereport"
	Mod         Component = "mod"
	Tool        Component = "tool"
)

// Components lists every component in display order.
func Components() []Component {
	return []Component{Auth, Core, Enrol, GradeReport, Mod, Tool}
}

// Function is a registered web-service function.
type Function struct {
	Name      string
	Component Component
	// Area is the subsystem or plugin name, e.g. "course" or "forum".
	Area string
	// IsList is true when the response implements the list contract.
	IsList bool

	decode func(raw interface{}) (Result, error)
}

// Result is a decoded response. Items holds the list entries in server order and is non-nil for
// list responses.
type Result struct {
	Function Function
	Value    interface{}
	IsList   bool
	Items    []interface{}
	Warnings []models.Warning
}

// Decode decodes a JSON response body of f.
func (f Function) Decode(body []byte) (Result, error) {
	raw, err := codec.ParseJSON(body)
	if err != nil {
		return Result{}, err
	}
	return f.DecodeValue(raw)
}

// DecodeYAML decodes a YAML rendition of a response of f.
func (f Function) DecodeYAML(body []byte) (Result, error) {
	raw, err := codec.ParseYAML(body)
	if err != nil {
		return Result{}, err
	}
	return f.DecodeValue(raw)
}

// DecodeValue decodes an already parsed response of f.
func (f Function) DecodeValue(raw interface{}) (Result, error) {
	res, err := f.decode(raw)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", f.Name, err)
	}
	res.Function = f
	return res, nil
}

var registry = map[string]Function{}

func init() {
	registerList[models.CourseList, models.Course]("core_course_get_courses")
	registerList[models.CourseByField, models.Course]("core_course_get_courses_by_field")
	registerList[models.SearchResult, models.Course]("core_course_search_courses")
	registerList[models.CoursesBTC, models.CourseBTC]("core_course_get_enrolled_courses_by_timeline_classification")
	register[models.WarningsResponse]("core_course_update_courses")
	register[models.ContactRequest]("core_message_create_contact_request")
	registerList[models.ForumList, models.Forum]("mod_forum_get_forums_by_courses")
	registerList[models.Resources, models.Resource]("mod_resource_get_resources_by_courses")
}

func register[R any](name string) {
	add(name, false, func(raw interface{}) (Result, error) {
		r, err := codec.DecodeValue[R](raw)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: r, Warnings: warningsOf(r)}, nil
	})
}

func registerList[R models.ListResponse[T], T any](name string) {
	add(name, true, func(raw interface{}) (Result, error) {
		r, err := codec.DecodeValue[R](raw)
		if err != nil {
			return Result{}, err
		}

		items := r.Items()
		out := make([]interface{}, len(items))
		for i, item := range items {
			out[i] = item
		}
		return Result{Value: r, IsList: true, Items: out, Warnings: warningsOf(r)}, nil
	})
}

func add(name string, isList bool, decode func(raw interface{}) (Result, error)) {
	if _, exists := registry[name]; exists {
		panic("catalog: duplicate function " + name)
	}

	parts := strings.SplitN(name, "_", 3)
	if len(parts) < 3 {
		panic("catalog: malformed function name " + name)
	}
	registry[name] = Function{
		Name:      name,
		Component: Component(parts[0]),
		Area:      parts[1],
		IsList:    isList,
		decode:    decode,
	}
}

func warningsOf(v interface{}) []models.Warning {
	if w, ok := v.(models.Warner); ok {
		return w.WarningList()
	}
	return nil
}

// Lookup returns the function registered under name.
func Lookup(name string) (Function, bool) {
	f, ok := registry[name]
	return f, ok
}

// Decode decodes body as a response of the named function.
func Decode(name string, body []byte) (Result, error) {
	f, ok := Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", mdlerrors.UnknownFunctionError, name)
	}
	return f.Decode(body)
}

// Functions returns every registered function sorted by name.
func Functions() []Function {
	fs := make([]Function, 0, len(registry))
	for _, f := range registry {
		fs = append(fs, f)
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i].Name < fs[j].Name })
	return fs
}

// ByComponent returns the functions of c sorted by name.
func ByComponent(c Component) []Function {
	var fs []Function
	for _, f := range Functions() {
		if f.Component == c {
			fs = append(fs, f)
		}
	}
	return fs
}
