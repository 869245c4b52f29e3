package models

// ForumFile is a file in a forum intro. Every field is optional.
type ForumFile struct {
	FileName       Optional[string] `json:"filename" mapstructure:"filename"`
	FilePath       Optional[string] `json:"filepath" mapstructure:"filepath"`
	FileSize       Optional[int]    `json:"filesize" mapstructure:"filesize"`
	FileURL        Optional[string] `json:"fileurl" mapstructure:"fileurl"`
	TimeModified   Optional[int]    `json:"timemodified" mapstructure:"timemodified"`
	MimeType       Optional[string] `json:"mimetype" mapstructure:"mimetype"`
	IsExternalFile Optional[int]    `json:"isexternalfile" mapstructure:"isexternalfile"`
	RepositoryType Optional[string] `json:"repositorytype" mapstructure:"repositorytype"`
}

type Forum struct {
	ID     int    `json:"id" mapstructure:"id"`
	Course int    `json:"course" mapstructure:"course"`
	Type   string `json:"type" mapstructure:"type"`
	Name   string `json:"name" mapstructure:"name"`
	Intro  string `json:"intro" mapstructure:"intro"`
	// IntroFormat is 1 = HTML, 0 = MOODLE, 2 = PLAIN or 4 = MARKDOWN.
	IntroFormat int `json:"introformat" mapstructure:"introformat"`
	// Assessed is the aggregate type.
	Assessed              int `json:"assessed" mapstructure:"assessed"`
	AssessTimeStart       int `json:"assesstimestart" mapstructure:"assesstimestart"`
	AssessTimeFinish      int `json:"assesstimefinish" mapstructure:"assesstimefinish"`
	Scale                 int `json:"scale" mapstructure:"scale"`
	MaxBytes              int `json:"maxbytes" mapstructure:"maxbytes"`
	MaxAttachments        int `json:"maxattachments" mapstructure:"maxattachments"`
	ForceSubscribe        int `json:"forcesubscribe" mapstructure:"forcesubscribe"`
	TrackingType          int `json:"trackingtype" mapstructure:"trackingtype"`
	RSSType               int `json:"rsstype" mapstructure:"rsstype"`
	RSSArticles           int `json:"rssarticles" mapstructure:"rssarticles"`
	TimeModified          int `json:"timemodified" mapstructure:"timemodified"`
	WarnAfter             int `json:"warnafter" mapstructure:"warnafter"`
	BlockAfter            int `json:"blockafter" mapstructure:"blockafter"`
	BlockPeriod           int `json:"blockperiod" mapstructure:"blockperiod"`
	CompletionDiscussions int `json:"completiondiscussions" mapstructure:"completiondiscussions"`
	CompletionReplies     int `json:"completionreplies" mapstructure:"completionreplies"`
	CompletionPosts       int `json:"completionposts" mapstructure:"completionposts"`
	CMID                  int `json:"cmid" mapstructure:"cmid"`

	DueDate             Optional[int] `json:"duedate" mapstructure:"duedate"`
	CutoffDate          Optional[int] `json:"cutoffdate" mapstructure:"cutoffdate"`
	NumDiscussions      Optional[int] `json:"numdiscussions" mapstructure:"numdiscussions"`
	CanCreateDiscussion Optional[int] `json:"cancreatediscussions" mapstructure:"cancreatediscussions"`
	LockDiscussionAfter Optional[int] `json:"lockdiscussionafter" mapstructure:"lockdiscussionafter"`
	IsTracked           Optional[int] `json:"istracked" mapstructure:"istracked"`
	UnreadPostsCount    Optional[int] `json:"unreadpostscount" mapstructure:"unreadpostscount"`

	IntroFiles []ForumFile `json:"introfiles" mapstructure:"introfiles"`
}

func (f Forum) String() string {
	return f.Name
}

// ForumList is the bare array returned by mod_forum_get_forums_by_courses.
type ForumList []Forum

func (l ForumList) Items() []Forum {
	return orEmpty([]Forum(l))
}
