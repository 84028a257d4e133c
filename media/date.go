package media

import (
	"time"

	"golang.org/x/text/language"
)

// dateLayouts lists the short date layout used for each supported locale.
// The first entry is the fallback.
var dateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.Italian, "2/1/2006"},
	{language.Dutch, "2-1-2006"},
	{language.BrazilianPortuguese, "02/01/2006"},
	{language.Russian, "02.01.2006"},
	{language.Polish, "2.01.2006"},
	{language.Swedish, "2006-01-02"},
	{language.Japanese, "2006/1/2"},
	{language.Chinese, "2006/1/2"},
	{language.Korean, "2006. 1. 2."},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLayouts))
	for i, l := range dateLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// DateLayout returns the short date layout matching an Accept-Language
// header value.
func DateLayout(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return dateLayouts[0].layout
	}
	_, idx, conf := dateMatcher.Match(tags...)
	if conf == language.No {
		return dateLayouts[0].layout
	}
	return dateLayouts[idx].layout
}

// FormatDate renders an RFC 3339 timestamp as a short local date. Values
// that do not parse are returned unchanged.
func FormatDate(timestamp, acceptLanguage string, loc *time.Location) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout(acceptLanguage))
}
