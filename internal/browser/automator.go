/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package browser drives the Radiocult web app with a headless browser to
// create the planned replay events. The provider has no write API for
// schedule events, so this mirrors what an operator would click through.
package browser

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"

	"github.com/friendsincode/eist_aris/internal/artifact"
	"github.com/friendsincode/eist_aris/internal/radiocult"
	"github.com/friendsincode/eist_aris/internal/replay"
	"github.com/friendsincode/eist_aris/internal/timeline"
)

const stepTimeout = 15 * time.Second

// Automator owns a browser session against the provider web app.
type Automator struct {
	browser *rod.Browser
	webBase string
	logger  zerolog.Logger
}

// New launches a browser and connects to it.
func New(webBase string, headless bool, logger zerolog.Logger) (*Automator, error) {
	l := launcher.New().Headless(headless)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	return &Automator{
		browser: b,
		webBase: strings.TrimSuffix(webBase, "/"),
		logger:  logger.With().Str("component", "browser").Logger(),
	}, nil
}

// Close shuts the browser down.
func (a *Automator) Close() error {
	return a.browser.Close()
}

// Login signs into the web app and returns the resulting session cookies so
// they can be shared with the API client.
func (a *Automator) Login(email, password string) ([]*http.Cookie, error) {
	var cookies []*proto.NetworkCookie
	err := rod.Try(func() {
		page := a.browser.MustPage(a.webBase + "/login")
		defer page.MustClose()

		page.Timeout(stepTimeout).MustElement(`input[type="email"]`).MustInput(email)
		page.MustElement(`input[type="password"]`).MustInput(password)
		page.MustElement(`button[type="submit"]`).MustClick()
		page.MustWaitRequestIdle()()

		cookies = page.MustCookies()
	})
	if err != nil {
		return nil, fmt.Errorf("web login: %w", err)
	}

	out := make([]*http.Cookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, &http.Cookie{
			Name:   c.Name,
			Value:  c.Value,
			Domain: c.Domain,
			Path:   c.Path,
		})
	}
	a.logger.Info().Int("cookies", len(out)).Msg("logged in")
	return out, nil
}

// Execute creates one show per mapping, continuing past per-show failures.
// Failed shows get a screenshot for debugging and any dangling modal is
// dismissed before the next attempt.
func (a *Automator) Execute(mappings []artifact.Mapping) (created, failed int) {
	page := a.browser.MustPage()
	defer page.MustClose()

	for i, m := range mappings {
		log := a.logger.With().
			Int("mapping", i+1).
			Str("title", m.Show.Title).
			Str("slot_start", m.Slot.Start).
			Logger()

		if err := rod.Try(func() { a.createShow(page, m) }); err != nil {
			failed++
			log.Error().Err(err).Msg("failed to create show")
			shot := fmt.Sprintf("error_screenshot_%d.png", i+1)
			if shotErr := rod.Try(func() { page.MustScreenshot(shot) }); shotErr == nil {
				log.Info().Str("path", shot).Msg("saved error screenshot")
			}
			a.closeOpenModals(page)
			continue
		}
		created++
		log.Info().Msg("show created")
	}
	return created, failed
}

// createShow fills in the create-event modal for one mapping. Must-style
// calls panic on failure; the caller recovers via rod.Try.
func (a *Automator) createShow(page *rod.Page, m artifact.Mapping) {
	start, err := m.Slot.StartTime()
	if err != nil {
		panic(fmt.Errorf("parse slot start: %w", err))
	}
	end := start.Add(time.Duration(m.Slot.ScheduledDuration) * time.Minute)

	week := timeline.WeekStart(start)
	page.MustNavigate(fmt.Sprintf("%s/schedule?w=%s", a.webBase, week.Format("2006-01-02"))).
		MustWaitLoad()

	page.Timeout(stepTimeout).MustElementR("button", "Create").MustClick()
	page.MustWaitStable()

	a.fillTimeField(page, `input[aria-labelledby*="startTime"]`, start.Format("15:04"))
	a.fillTimeField(page, `input[aria-labelledby*="endTime"]`, end.Format("15:04"))

	a.pickDate(page, `input[id^="startDate"]`, start.Day())
	a.pickDate(page, `input[id^="endDate"]`, start.Day())

	page.MustElement(`input[name="title"]`).MustInput(replay.MarkedTitle(m.Show.Title))

	description := radiocult.PlainDescription(m.Show.Description)
	if description == "" {
		description = "Éist arís replay show."
	}
	page.MustElement(`p[data-placeholder*="Enter event description"]`).MustClick()
	page.MustInsertText(description)

	if m.Show.ArtistName != "" {
		page.MustElement(`input#artist-select`).MustClick()
		page.MustInsertText(m.Show.ArtistName)
		page.Keyboard.MustType(input.Enter)
	}

	page.MustElementR("button", "Mix Pre-record").MustClick()
	page.MustWaitStable()

	page.MustElementR("*", "Select media").MustClick()
	page.MustWaitStable()

	trackTitle := m.Show.TrackTitle
	if trackTitle == "" {
		trackTitle = m.Show.Title
	}
	searchInputs := page.MustElements(`input[data-ds--text-field--input="true"]`)
	if len(searchInputs) == 0 {
		panic(fmt.Errorf("media search input not found"))
	}
	searchInputs[len(searchInputs)-1].MustInput(trackTitle)
	page.MustWaitStable()

	page.MustElementR("tr", regexp.QuoteMeta(trackTitle)).MustClick()

	page.MustElementR(`button[type="submit"]`, "Create event").MustClick()
	page.MustWaitRequestIdle()()
}

// fillTimeField clears a time input and types the value, working around the
// picker's parsing quirks: it reads "12:00" as midnight and mishandles
// "15:00", so those are sent in 12-hour form.
func (a *Automator) fillTimeField(page *rod.Page, selector, value string) {
	switch value {
	case "12:00":
		value = "12:00pm"
	case "15:00":
		value = "3:00pm"
	}

	el := page.Timeout(stepTimeout).MustElement(selector)
	el.MustClick()
	el.MustSelectAllText().MustInput("")
	el.MustInput(value)
	el.MustType(input.Enter)
}

// pickDate opens a calendar input and clicks the grid cell for the day of
// month, skipping sibling-month cells.
func (a *Automator) pickDate(page *rod.Page, selector string, day int) {
	inputs := page.MustElements(selector)
	if len(inputs) == 0 {
		// End date picker is not always rendered.
		return
	}
	inputs[0].MustClick()
	page.MustWaitStable()

	want := strconv.Itoa(day)
	cells := page.MustElements(`button[role="gridcell"]:not([data-sibling])`)
	for _, cell := range cells {
		if strings.TrimSpace(cell.MustText()) == want {
			cell.MustClick()
			page.MustWaitStable()
			return
		}
	}
	panic(fmt.Errorf("calendar day %d not found", day))
}

// closeOpenModals presses Escape a few times to dismiss whatever dialog a
// failed attempt left behind.
func (a *Automator) closeOpenModals(page *rod.Page) {
	_ = rod.Try(func() {
		for i := 0; i < 3; i++ {
			page.Keyboard.MustType(input.Escape)
			time.Sleep(300 * time.Millisecond)
		}
	})
}
