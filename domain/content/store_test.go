package content

import (
	"io/fs"
	"sync"
	"testing"
	"testing/fstest"

	"burokrat-site/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type countingLoader struct {
	mu    sync.Mutex
	files map[string]string
	calls map[string]int
}

func newCountingLoader(files map[string]string) *countingLoader {
	return &countingLoader{files: files, calls: make(map[string]int)}
}

func (l *countingLoader) Load(name string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[name]++
	body, ok := l.files[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(body), nil
}

func (l *countingLoader) count(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[name]
}

const mainYAML = `
title: Бюрократ
description: Печати и штампы в Барнауле
language: ru
navigation:
  main_menu:
    - label: Печати и штампы
      url: /seals-and-stamps
    - label: О нас
      url: /about
company_info:
  name: Бюрократ
  items:
    - label: Работаем с 1998 года
    - Изготовление печатей
    - for_clients: Клиентам
      items:
        - delivery: Доставка
        - payment: Оплата
`

func TestStore_CachesFirstLoad(t *testing.T) {
	loader := newCountingLoader(map[string]string{
		RecordMain:    mainYAML,
		RecordPrivacy: "title: Политика\n",
	})
	store := NewStore(loader)

	first, err := store.Privacy()
	require.NoError(t, err)
	second, err := store.Privacy()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loader.count(RecordPrivacy))
}

func TestStore_InitLoadsMainEagerly(t *testing.T) {
	loader := newCountingLoader(map[string]string{RecordMain: mainYAML})
	store := NewStore(loader)

	require.NoError(t, store.Init())
	assert.Equal(t, 1, loader.count(RecordMain))

	main, err := store.Main()
	require.NoError(t, err)
	assert.Equal(t, "Бюрократ", main.Title)
	assert.Equal(t, 1, loader.count(RecordMain))
	assert.Equal(t, 0, loader.count(RecordAbout))
}

func TestStore_LiveReloadRereads(t *testing.T) {
	loader := newCountingLoader(map[string]string{RecordClients: "title: Клиентам\n"})
	store := NewStore(loader, WithLiveReload(true))

	_, err := store.Clients()
	require.NoError(t, err)
	loader.files[RecordClients] = "title: Покупателям\n"
	rec, err := store.Clients()
	require.NoError(t, err)

	assert.Equal(t, "Покупателям", rec.Title)
	assert.Equal(t, 2, loader.count(RecordClients))
}

func TestStore_ConcurrentFirstAccess(t *testing.T) {
	loader := newCountingLoader(map[string]string{RecordAbout: "title: О нас\n"})
	store := NewStore(loader)

	var wg sync.WaitGroup
	results := make([]*About, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec, err := store.About()
			if err == nil {
				results[i] = rec
			}
		}(i)
	}
	wg.Wait()

	for _, rec := range results {
		require.NotNil(t, rec)
		assert.Same(t, results[0], rec)
	}
}

func TestStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{name: "missing file", files: map[string]string{}},
		{name: "malformed yaml", files: map[string]string{RecordMain: "title: [unclosed"}},
		{name: "missing required key", files: map[string]string{RecordMain: "description: x\n"}},
		{name: "empty navigation", files: map[string]string{RecordMain: "title: x\ncompany_info:\n  name: y\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(newCountingLoader(tt.files))
			err := store.Init()
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeContentLoad))
		})
	}
}

func TestStore_FailedLoadIsNotCached(t *testing.T) {
	loader := newCountingLoader(map[string]string{})
	store := NewStore(loader)

	_, err := store.Agreement()
	require.Error(t, err)

	loader.files[RecordAgreement] = "title: Соглашение\n"
	rec, err := store.Agreement()
	require.NoError(t, err)
	assert.Equal(t, "Соглашение", rec.Title)
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"stationery.yaml": {Data: []byte("title: Канцелярия\npage:\n  intro:\n    heading: Канцтовары\n")},
	}
	store := NewStore(FSLoader{FS: fsys})

	rec, err := store.Stationery()
	require.NoError(t, err)
	assert.Equal(t, "Канцтовары", rec.Page.Intro.Heading)
}

func TestCompanyItem_Decode(t *testing.T) {
	var info CompanyInfo
	require.NoError(t, yaml.Unmarshal([]byte(`
name: Бюрократ
items:
  - Печати за 1 час
  - label: Работаем с 1998 года
  - for_clients: Клиентам
    items:
      - delivery: Доставка
      - payment: Оплата
  - label: Второй ярлык
`), &info))

	require.Len(t, info.Items, 4)
	assert.Equal(t, CompanyItem{Kind: ItemText, Text: "Печати за 1 час"}, info.Items[0])
	assert.Equal(t, CompanyItem{Kind: ItemLabel, Text: "Работаем с 1998 года"}, info.Items[1])
	assert.Equal(t, CompanyItem{
		Kind: ItemGroup,
		Key:  "for_clients",
		Text: "Клиентам",
		Links: []AnchorLink{
			{Anchor: "delivery", Text: "Доставка"},
			{Anchor: "payment", Text: "Оплата"},
		},
	}, info.Items[2])

	label, rest := info.Highlight()
	assert.Equal(t, "Работаем с 1998 года", label)
	assert.Len(t, rest, 3)
}

func TestCompanyItem_RejectsGroupWithoutTitle(t *testing.T) {
	var it CompanyItem
	err := yaml.Unmarshal([]byte("items:\n  - a: b\n"), &it)
	assert.Error(t, err)
}

func TestContactForm_MessageAlias(t *testing.T) {
	var c Contact
	require.NoError(t, yaml.Unmarshal([]byte(`
title: Контакты
form:
  fields:
    comment:
      label: Комментарий
`), &c))
	assert.Equal(t, "Комментарий", c.Form.Fields.MessageField().Label)
	assert.Nil(t, c.Form.Consent)
}
