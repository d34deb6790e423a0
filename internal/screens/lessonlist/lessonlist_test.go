package lessonlist

import (
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/janadahlmanns/OrganIQ/internal/config"
	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/progression"
	"github.com/janadahlmanns/OrganIQ/internal/router"
	"github.com/janadahlmanns/OrganIQ/internal/store"
)

func newListScreen(t *testing.T) (*ListScreen, *progression.Ledger) {
	t.Helper()
	ct, err := content.Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	st, err := store.Open(filepath.Join(t.TempDir(), "organiq.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	ledger := progression.New(st)
	settings := &config.Settings{Language: config.LangEnglish}
	return New(ct, ledger, st, settings, "heart"), ledger
}

func TestLockedLessonsAreDisabled(t *testing.T) {
	l, _ := newListScreen(t)

	items := l.buildItems()
	if items[0].Disabled {
		t.Error("lesson 01 starts unlocked")
	}
	if !items[1].Disabled {
		t.Error("lesson 02 starts locked")
	}
	if items[len(items)-1].Disabled {
		t.Error("the review lesson starts unlocked")
	}
}

func TestStatusBadges(t *testing.T) {
	l, ledger := newListScreen(t)

	ledger.CompleteLesson(progression.Key("heart", "01"))
	ledger.UnlockLesson(progression.Key("heart", "02"))
	ledger.PerfectLesson(progression.Key("heart", "02"))

	items := l.buildItems()
	if !strings.Contains(items[0].Badge, "✓") {
		t.Errorf("completed badge = %q, want check mark", items[0].Badge)
	}
	if !strings.Contains(items[1].Badge, "♛") {
		t.Errorf("perfect badge = %q, want crown", items[1].Badge)
	}
	if items[2].Badge != "🔒" {
		t.Errorf("locked badge = %q, want lock", items[2].Badge)
	}
}

func TestUpdateRefreshesUnlocks(t *testing.T) {
	l, ledger := newListScreen(t)

	if !l.menu.Items[1].Disabled {
		t.Fatal("lesson 02 must start locked")
	}

	// Simulate a lesson finishing while this screen sat under it.
	ledger.UnlockLesson(progression.Key("heart", "02"))
	l.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	if l.menu.Items[1].Disabled {
		t.Error("lesson 02 must unlock on the next update")
	}
}

func TestEnterPushesLessonScreen(t *testing.T) {
	l, _ := newListScreen(t)

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a push onto the lesson screen")
	}
}
