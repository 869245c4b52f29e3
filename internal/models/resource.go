package models

// File is a file attached to a resource. The server may omit any of its fields.
type File struct {
	FileName     Optional[string] `json:"filename" mapstructure:"filename"`
	FilePath     Optional[string] `json:"filepath" mapstructure:"filepath"`
	FileSize     Optional[int]    `json:"filesize" mapstructure:"filesize"`
	FileURL      Optional[string] `json:"fileurl" mapstructure:"fileurl"`
	TimeModified Optional[int]    `json:"timemodified" mapstructure:"timemodified"`
	MimeType     Optional[string] `json:"mimetype" mapstructure:"mimetype"`
	// IsExternalFile is 1 when the file lives in an external repository.
	IsExternalFile Optional[int]    `json:"isexternalfile" mapstructure:"isexternalfile"`
	RepositoryType Optional[string] `json:"repositorytype" mapstructure:"repositorytype"`
}

// Resource is a file resource course module.
type Resource struct {
	ID           int    `json:"id" mapstructure:"id"`
	CourseModule int    `json:"coursemodule" mapstructure:"coursemodule"`
	Course       int    `json:"course" mapstructure:"course"`
	Name         string `json:"name" mapstructure:"name"`
	Intro        string `json:"intro" mapstructure:"intro"`
	IntroFormat  int    `json:"introformat" mapstructure:"introformat"`
	TobeMigrated int    `json:"tobemigrated" mapstructure:"tobemigrated"`
	LegacyFiles  int    `json:"legacyfiles" mapstructure:"legacyfiles"`
	// Display is how the resource is displayed; DisplayOptions carries width and height.
	Display        int       `json:"display" mapstructure:"display"`
	DisplayOptions string    `json:"displayoptions" mapstructure:"displayoptions"`
	FilterFiles    int       `json:"filterfiles" mapstructure:"filterfiles"`
	Revision       int       `json:"revision" mapstructure:"revision"`
	TimeModified   Timestamp `json:"timemodified" mapstructure:"timemodified"`
	Section        int       `json:"section" mapstructure:"section"`
	Visible        int       `json:"visible" mapstructure:"visible"`
	GroupMode      int       `json:"groupmode" mapstructure:"groupmode"`
	GroupingID     int       `json:"groupingid" mapstructure:"groupingid"`

	IntroFiles      []File        `json:"introfiles" mapstructure:"introfiles"`
	ContentFiles    []File        `json:"contentfiles" mapstructure:"contentfiles"`
	LegacyFilesLast Optional[int] `json:"legacyfileslast" mapstructure:"legacyfileslast"`
}

// Resources is the response of mod_resource_get_resources_by_courses.
type Resources struct {
	Resources []Resource `json:"resources" mapstructure:"resources"`
	Warnings  []Warning  `json:"warnings" mapstructure:"warnings"`
}

func (r Resources) Items() []Resource {
	return orEmpty(r.Resources)
}

func (r Resources) WarningList() []Warning {
	return r.Warnings
}
