package cli

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/droplogistics/internal/client/storage"
	"github.com/dmitrijs2005/droplogistics/internal/i18n"
)

// keptByClearCache are the keys that survive "clearcache"; credential
// records are kept as well.
var keptByClearCache = []string{
	storage.KeySession,
	storage.KeyFavorites,
	storage.KeyViewHistory,
	storage.KeyLanguage,
}

// Lang shows the active language or switches to another one.
func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		current := a.language.Language()
		a.printf("%s: %s\n", a.t().Language, current.NativeName())
		for _, l := range i18n.Languages() {
			mark := " "
			if l == current {
				mark = "*"
			}
			a.printf("  %s %s  %s\n", mark, l, l.NativeName())
		}
		return nil
	}

	lang, err := i18n.ParseLanguage(args[0])
	if err != nil {
		a.usage("lang [en|ru|tg]")
		return nil
	}
	if err := a.language.SetLanguage(ctx, lang); err != nil {
		return err
	}
	a.println(a.t().LanguageChanged)
	return nil
}

// ClearCache removes every stored key except the session, favorites,
// history, language and credential records.
func (a *App) ClearCache(ctx context.Context, _ []string) error {
	keys, err := a.repo.Keys(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to list keys", "error", err)
		a.println(a.t().CacheClearFailed)
		return nil
	}

	drop := make([]string, 0, len(keys))
	for _, k := range keys {
		if slices.Contains(keptByClearCache, k) || strings.HasPrefix(k, storage.KeyCredentialPrefix) {
			continue
		}
		drop = append(drop, k)
	}

	if err := a.repo.DeleteMany(ctx, drop); err != nil {
		a.log.Error(ctx, "failed to clear cache", "error", err)
		a.println(a.t().CacheClearFailed)
		return nil
	}
	a.log.Info(ctx, "cache cleared", "keys", len(drop))
	a.println(a.t().CacheCleared)
	return nil
}

// ClearData wipes local storage and signs the user out.
func (a *App) ClearData(ctx context.Context, _ []string) error {
	if err := a.repo.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear data", "error", err)
		a.println(a.t().ClearDataFailed)
		return nil
	}

	a.session.Logout(ctx)
	a.favorites.Load(ctx)
	a.history.Load(ctx)
	a.language.Load(ctx)
	a.println(a.t().AllDataCleared)
	return nil
}
