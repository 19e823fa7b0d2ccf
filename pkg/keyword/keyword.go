package keyword

import (
	"embed"
	"os"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

//go:embed keywords.toml
var f embed.FS

// Resource 静态表中预置的资料条目
type Resource struct {
	Title       string `toml:"title" json:"title"`
	Description string `toml:"description" json:"description"`
	URL         string `toml:"url" json:"url"`
	Type        string `toml:"type" json:"type"`
	Source      string `toml:"source" json:"source"`
}

// Entry 检索词到关联内容的静态映射
type Entry struct {
	Key                  string     `toml:"key" json:"key"`
	Label                string     `toml:"label" json:"label"`
	RelatedKeywords      []string   `toml:"related_keywords" json:"related_keywords"`
	RelatedCategories    []string   `toml:"related_categories" json:"related_categories"`
	RelatedSubCategories []string   `toml:"related_sub_categories" json:"related_sub_categories"`
	Resources            []Resource `toml:"resources" json:"resources"`
}

// Category 首页分类页的静态内容
type Category struct {
	Title       string     `toml:"title" json:"title"`
	Description string     `toml:"description" json:"description"`
	Resources   []Resource `toml:"resources" json:"resources"`
}

type tableFile struct {
	Default    Entry      `toml:"default"`
	Entries    []Entry    `toml:"entry"`
	Categories []Category `toml:"category"`
}

// Table 只读检索表，启动时加载，运行期不再变更
type Table struct {
	entries    map[string]Entry
	categories map[string]Category
	ordered    []Category
	defaults   Entry
}

// MustLoad 加载内置检索表，path 不为空时使用外部文件覆盖
func MustLoad(path string) *Table {
	t, err := Load(path)
	if err != nil {
		panic(err)
	}
	return t
}

func Load(path string) (*Table, error) {
	var (
		raw []byte
		err error
	)
	if path != "" {
		raw, err = os.ReadFile(path)
	} else {
		raw, err = f.ReadFile("keywords.toml")
	}
	if err != nil {
		return nil, err
	}

	var file tableFile
	if err = toml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	t := &Table{
		entries:    make(map[string]Entry),
		categories: make(map[string]Category),
		defaults:   file.Default,
		ordered:    file.Categories,
	}
	for _, e := range file.Entries {
		t.entries[Normalize(e.Key)] = e
	}
	for _, c := range file.Categories {
		t.categories[c.Title] = c
	}
	return t, nil
}

// Normalize 小写并去除所有空白，作为表的查找键
func Normalize(query string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(query) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Result 一次静态解析的结果
type Result struct {
	Matched              bool       `json:"matched"`
	RelatedKeywords      []string   `json:"related_keywords"`
	RelatedCategories    []string   `json:"related_categories"`
	RelatedSubCategories []string   `json:"related_sub_categories"`
	Resources            []Resource `json:"resources"`
}

// Resolve 按固定顺序解析检索词：
// 1. 归一化后的键直接命中
// 2. 子分类精确匹配（忽略大小写），归属分类作为关联分类返回
// 3. 兜底返回默认结果
func (t *Table) Resolve(query string) Result {
	if e, ok := t.entries[Normalize(query)]; ok {
		return Result{
			Matched:              true,
			RelatedKeywords:      e.RelatedKeywords,
			RelatedCategories:    e.RelatedCategories,
			RelatedSubCategories: e.RelatedSubCategories,
			Resources:            e.Resources,
		}
	}

	display := strings.TrimSpace(query)
	for _, e := range t.entries {
		for _, sub := range e.RelatedSubCategories {
			if strings.EqualFold(sub, display) {
				owner := e.Label
				if owner == "" {
					owner = e.Key
				}
				return Result{
					Matched:              true,
					RelatedKeywords:      e.RelatedKeywords,
					RelatedCategories:    []string{owner},
					RelatedSubCategories: e.RelatedSubCategories,
					Resources:            t.defaults.Resources,
				}
			}
		}
	}

	return Result{
		Matched:              false,
		RelatedKeywords:      t.defaults.RelatedKeywords,
		RelatedCategories:    t.defaults.RelatedCategories,
		RelatedSubCategories: t.defaults.RelatedSubCategories,
		Resources:            t.defaults.Resources,
	}
}

// Category 按标题获取分类页内容
func (t *Table) Category(title string) (Category, bool) {
	c, ok := t.categories[title]
	return c, ok
}

// Categories 按配置顺序返回全部分类
func (t *Table) Categories() []Category {
	return t.ordered
}
