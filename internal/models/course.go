package models

// CourseFormatOption is an additional option for a particular course format.
type CourseFormatOption struct {
	Name  string      `json:"name" mapstructure:"name"`
	Value FormatValue `json:"value" mapstructure:"value"`
}

type CourseShortData struct {
	ID        int    `json:"id" mapstructure:"id"`
	ShortName string `json:"shortname" mapstructure:"shortname"`
}

// CourseCustomField is a custom field and its value.
type CourseCustomField struct {
	Name      string `json:"name" mapstructure:"name"`
	ShortName string `json:"shortname" mapstructure:"shortname"`
	// Type is the custom field type: text, checkbox, ...
	Type  string           `json:"type" mapstructure:"type"`
	Value Optional[string] `json:"value" mapstructure:"value"`
}

// Course is a course as returned by the course functions.
type Course struct {
	ID          int    `json:"id" mapstructure:"id"`
	ShortName   string `json:"shortname" mapstructure:"shortname"`
	CategoryID  int    `json:"categoryid" mapstructure:"categoryid"`
	FullName    string `json:"fullname" mapstructure:"fullname"`
	DisplayName string `json:"displayname" mapstructure:"displayname"`
	Summary     string `json:"summary" mapstructure:"summary"`
	// SummaryFormat is 1 = HTML, 0 = MOODLE, 2 = PLAIN or 4 = MARKDOWN.
	SummaryFormat int `json:"summaryformat" mapstructure:"summaryformat"`
	// Format is the course format: weeks, topics, social, site, ...
	Format    string `json:"format" mapstructure:"format"`
	StartDate int    `json:"startdate" mapstructure:"startdate"`
	EndDate   int    `json:"enddate" mapstructure:"enddate"`

	CategorySortOrder Optional[int]    `json:"categorysortorder" mapstructure:"categorysortorder"`
	IDNumber          Optional[string] `json:"idnumber" mapstructure:"idnumber"`
	ShowGrades        Optional[int]    `json:"showgrades" mapstructure:"showgrades"`
	NewsItems         Optional[int]    `json:"newsitems" mapstructure:"newsitems"`
	// NumSections is deprecated on the server in favour of course format options.
	NumSections       Optional[int]       `json:"numsections" mapstructure:"numsections"`
	MaxBytes          Optional[int]       `json:"maxbytes" mapstructure:"maxbytes"`
	ShowReports       Optional[int]       `json:"showreports" mapstructure:"showreports"`
	Visible           Optional[int]       `json:"visible" mapstructure:"visible"`
	GroupMode         Optional[int]       `json:"groupmode" mapstructure:"groupmode"`
	GroupModeForce    Optional[int]       `json:"groupmodeforce" mapstructure:"groupmodeforce"`
	DefaultGroupingID Optional[int]       `json:"defaultgroupingid" mapstructure:"defaultgroupingid"`
	TimeCreated       Optional[Timestamp] `json:"timecreated" mapstructure:"timecreated"`
	TimeModified      Optional[Timestamp] `json:"timemodified" mapstructure:"timemodified"`
	EnableCompletion  Optional[int]       `json:"enablecompletion" mapstructure:"enablecompletion"`
	CompletionNotify  Optional[int]       `json:"completionnotify" mapstructure:"completionnotify"`
	Lang              Optional[string]    `json:"lang" mapstructure:"lang"`
	ForceTheme        Optional[string]    `json:"forcetheme" mapstructure:"forcetheme"`
	HiddenSections    Optional[int]       `json:"hiddensections" mapstructure:"hiddensections"`

	CourseFormatOptions []CourseFormatOption `json:"courseformatoptions" mapstructure:"courseformatoptions"`
	CustomFields        []CourseCustomField  `json:"customfields" mapstructure:"customfields"`
}

// CourseToCheck is one entry of a "check updates" request.
type CourseToCheck struct {
	// ContextLevel is the context level of the file location. Only "module" is supported.
	ContextLevel string    `json:"contextlevel" mapstructure:"contextlevel"`
	ID           int       `json:"id" mapstructure:"id"`
	Since        Timestamp `json:"since" mapstructure:"since"`
}

// CourseList is the bare array returned by core_course_get_courses.
type CourseList []Course

func (l CourseList) Items() []Course {
	return orEmpty([]Course(l))
}

// CourseByField is the response of core_course_get_courses_by_field.
type CourseByField struct {
	Courses  []Course  `json:"courses" mapstructure:"courses"`
	Warnings []Warning `json:"warnings" mapstructure:"warnings"`
}

func (r CourseByField) Items() []Course {
	return orEmpty(r.Courses)
}

func (r CourseByField) WarningList() []Warning {
	return r.Warnings
}

// SearchResult is the response of core_course_search_courses.
type SearchResult struct {
	Total    int       `json:"total" mapstructure:"total"`
	Courses  []Course  `json:"courses" mapstructure:"courses"`
	Warnings []Warning `json:"warnings" mapstructure:"warnings"`
}

func (r SearchResult) Items() []Course {
	return orEmpty(r.Courses)
}

func (r SearchResult) WarningList() []Warning {
	return r.Warnings
}

// TotalCount is the number of matching courses across all pages.
func (r SearchResult) TotalCount() int {
	return r.Total
}

// CourseBTC is a course as listed by timeline classification.
type CourseBTC struct {
	ID              int           `json:"id" mapstructure:"id"`
	FullName        string        `json:"fullname" mapstructure:"fullname"`
	ShortName       string        `json:"shortname" mapstructure:"shortname"`
	IDNumber        string        `json:"idnumber" mapstructure:"idnumber"`
	Summary         string        `json:"summary" mapstructure:"summary"`
	SummaryFormat   int           `json:"summaryformat" mapstructure:"summaryformat"`
	StartDate       int           `json:"startdate" mapstructure:"startdate"`
	EndDate         int           `json:"enddate" mapstructure:"enddate"`
	Visible         int           `json:"visible" mapstructure:"visible"`
	FullNameDisplay string        `json:"fullnamedisplay" mapstructure:"fullnamedisplay"`
	ViewURL         string        `json:"viewurl" mapstructure:"viewurl"`
	CourseImage     string        `json:"courseimage" mapstructure:"courseimage"`
	HasProgress     int           `json:"hasprogress" mapstructure:"hasprogress"`
	IsFavourite     int           `json:"isfavourite" mapstructure:"isfavourite"`
	Hidden          int           `json:"hidden" mapstructure:"hidden"`
	ShowShortName   int           `json:"showshortname" mapstructure:"showshortname"`
	CourseCategory  string        `json:"coursecategory" mapstructure:"coursecategory"`
	Progress        Optional[int] `json:"progress" mapstructure:"progress"`
	TimeAccess      Optional[int] `json:"timeaccess" mapstructure:"timeaccess"`
}

// CoursesBTC is the response of core_course_get_enrolled_courses_by_timeline_classification.
type CoursesBTC struct {
	NextOffset int         `json:"nextoffset" mapstructure:"nextoffset"`
	Courses    []CourseBTC `json:"courses" mapstructure:"courses"`
}

func (r CoursesBTC) Items() []CourseBTC {
	return orEmpty(r.Courses)
}

// NextPageOffset is the offset the server wants the next request to start from.
func (r CoursesBTC) NextPageOffset() int {
	return r.NextOffset
}

// CourseTU is a course to update. Only ID is required; absent fields are left untouched by the server.
type CourseTU struct {
	ID                  int                            `json:"id" mapstructure:"id"`
	FullName            Optional[string]               `json:"fullname" mapstructure:"fullname"`
	ShortName           Optional[string]               `json:"shortname" mapstructure:"shortname"`
	CategoryID          Optional[int]                  `json:"categoryid" mapstructure:"categoryid"`
	IDNumber            Optional[string]               `json:"idnumber" mapstructure:"idnumber"`
	Summary             Optional[string]               `json:"summary" mapstructure:"summary"`
	SummaryFormat       Optional[int]                  `json:"summaryformat" mapstructure:"summaryformat"`
	Format              Optional[string]               `json:"format" mapstructure:"format"`
	ShowGrades          Optional[int]                  `json:"showgrades" mapstructure:"showgrades"`
	NewsItems           Optional[int]                  `json:"newsitems" mapstructure:"newsitems"`
	StartDate           Optional[int]                  `json:"startdate" mapstructure:"startdate"`
	EndDate             Optional[int]                  `json:"enddate" mapstructure:"enddate"`
	NumSections         Optional[int]                  `json:"numsections" mapstructure:"numsections"`
	MaxBytes            Optional[int]                  `json:"maxbytes" mapstructure:"maxbytes"`
	ShowReports         Optional[int]                  `json:"showreports" mapstructure:"showreports"`
	Visible             Optional[int]                  `json:"visible" mapstructure:"visible"`
	HiddenSections      Optional[int]                  `json:"hiddensections" mapstructure:"hiddensections"`
	GroupMode           Optional[int]                  `json:"groupmode" mapstructure:"groupmode"`
	GroupModeForce      Optional[int]                  `json:"groupmodeforce" mapstructure:"groupmodeforce"`
	DefaultGroupingID   Optional[int]                  `json:"defaultgroupingid" mapstructure:"defaultgroupingid"`
	EnableCompletion    Optional[int]                  `json:"enablecompletion" mapstructure:"enablecompletion"`
	CompletionNotify    Optional[int]                  `json:"completionnotify" mapstructure:"completionnotify"`
	Lang                Optional[string]               `json:"lang" mapstructure:"lang"`
	ForceTheme          Optional[string]               `json:"forcetheme" mapstructure:"forcetheme"`
	CourseFormatOptions Optional[[]CourseFormatOption] `json:"courseformatoptions" mapstructure:"courseformatoptions"`
	CustomFields        Optional[[]CourseCustomField]  `json:"customfields" mapstructure:"customfields"`
}
