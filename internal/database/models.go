package database

type Post struct {
	Id      int
	Title   string
	Author  string
	Content string
	Date    string
}

// Layout of Post.Date, local time.
const DATE_LAYOUT = "2006-01-02 15:04"

type Defaults struct {
	Title  string
	Author string
}

var KoreanDefaults = Defaults{Title: "제목 없음", Author: "익명"}

var EnglishDefaults = Defaults{Title: "untitled", Author: "anonymous"}
