package overview

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmeijn/dp-events/internal/event"
	"github.com/cmeijn/dp-events/internal/markup"
)

// homePageID is the root-element id of the placeholder page the site
// serves for unknown event URLs. Any other id is treated as a normal
// event page.
const homePageID = "page_home_index"

// Parse extracts the event summary from a raw overview page. It fails at
// the first missing or malformed piece; no partial Event is ever
// returned.
func Parse(html string) (*event.Event, error) {
	doc, err := markup.Parse(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedMarkup, err)
	}

	pageID, err := parsePageID(doc)
	if err != nil {
		return nil, err
	}
	if pageID == homePageID {
		return nil, ErrNonExistingEvent
	}

	canonicalURL, err := parseCanonicalURL(doc)
	if err != nil {
		return nil, err
	}

	title, err := parseTitle(doc)
	if err != nil {
		return nil, err
	}

	finalDate, err := parseFinalDate(doc)
	if err != nil {
		return nil, err
	}

	registrationLink, err := parseOpenRegistrationLink(doc)
	if err != nil {
		return nil, err
	}

	return &event.Event{
		CanonicalURL:         canonicalURL,
		Title:                title,
		FinalDate:            finalDate,
		OpenRegistrationLink: registrationLink,
	}, nil
}

func parsePageID(doc markup.Document) (string, error) {
	root, ok := doc.First("html")
	if !ok {
		return "", ErrUnexpectedMarkup
	}
	id, ok := root.Attr("id")
	if !ok {
		return "", ErrUnexpectedMarkup
	}
	return id, nil
}

func parseCanonicalURL(doc markup.Document) (string, error) {
	link, ok := doc.First(`link[rel="canonical"]`)
	if !ok {
		return "", ErrUnexpectedMarkup
	}
	href, ok := link.Attr("href")
	if !ok {
		return "", ErrUnexpectedMarkup
	}
	return href, nil
}

func parseTitle(doc markup.Document) (string, error) {
	article, ok := doc.First("article")
	if !ok {
		return "", ErrUnexpectedMarkup
	}
	title, ok := article.Attr("data-event-title")
	if !ok {
		return "", ErrUnexpectedMarkup
	}
	return title, nil
}

// parseFinalDate reads the finalized date range. An absent final-summary
// section means scheduling has not concluded yet and is not an error.
func parseFinalDate(doc markup.Document) (*event.DateRange, error) {
	summary, ok := doc.First("#final_summary")
	if !ok {
		return nil, nil
	}

	date, ok := summary.First(".date")
	if !ok {
		return nil, ErrUnexpectedMarkup
	}

	startText, ok := date.Attr("data-startdate")
	if !ok {
		return nil, ErrUnexpectedMarkup
	}
	endText, ok := date.Attr("data-enddate")
	if !ok {
		return nil, ErrUnexpectedMarkup
	}

	start, err := parseTimestamp(startText)
	if err != nil {
		return nil, err
	}
	end, err := parseTimestamp(endText)
	if err != nil {
		return nil, err
	}

	return &event.DateRange{Start: start, End: end}, nil
}

func parseOpenRegistrationLink(doc markup.Document) (string, error) {
	article, ok := doc.First("article")
	if !ok {
		return "", ErrUnexpectedMarkup
	}
	link, ok := article.Attr("data-openregistration-link")
	if !ok {
		return "", ErrUnexpectedMarkup
	}
	// An empty attribute means registration is closed.
	return link, nil
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &DateParseError{Value: value, Err: err}
	}
	return t.UTC(), nil
}
