package cart

import "fmt"

// メニューから渡される商品情報（addItemの入力）
type CatalogItem struct {
	ID          string
	Name        string
	Description string
	UnitPrice   int64 // 最小通貨単位（セント）
	Tags        []string
}

// カートの明細。Quantityは常に1以上。
type LineItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	UnitPrice   int64    `json:"unit_price"`
	Quantity    int64    `json:"quantity"`
	Tags        []string `json:"tags"`
}

type State int

const (
	StateEmpty State = iota
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "EMPTY"
	case StatePopulated:
		return "POPULATED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Cart は1セッション分のカート。
// ロックは持たないので、呼び出し側（セッションストア）が排他する。
type Cart struct {
	lines map[string]*LineItem
	order []string
}

func New() *Cart {
	return &Cart{lines: make(map[string]*LineItem)}
}

// AddItem は同一IDなら数量+1、無ければ数量1で追加する。
// 既存明細の名前や価格は上書きしない。
func (c *Cart) AddItem(item CatalogItem) {
	if li, ok := c.lines[item.ID]; ok {
		li.Quantity++
		return
	}

	c.lines[item.ID] = &LineItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		UnitPrice:   item.UnitPrice,
		Quantity:    1,
		Tags:        copyTags(item.Tags),
	}
	c.order = append(c.order, item.ID)
}

// RemoveItem は数量に関係なく明細を削除する。
// 無いIDは何もしない。削除したかどうかを返す。
func (c *Cart) RemoveItem(id string) bool {
	if _, ok := c.lines[id]; !ok {
		return false
	}

	delete(c.lines, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// SetQuantity は数量を置き換える。0以下はRemoveItemと同じ。
// 無いIDは何もしない。
func (c *Cart) SetQuantity(id string, quantity int64) bool {
	if quantity <= 0 {
		return c.RemoveItem(id)
	}

	li, ok := c.lines[id]
	if !ok {
		return false
	}
	li.Quantity = quantity
	return true
}

func (c *Cart) Clear() {
	c.lines = make(map[string]*LineItem)
	c.order = nil
}

// ItemCount は数量の合計（明細数ではない）。
func (c *Cart) ItemCount() int64 {
	var n int64
	for _, li := range c.lines {
		n += li.Quantity
	}
	return n
}

// Items は追加順のコピーを返す。戻り値を変更してもカートには影響しない。
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, 0, len(c.order))
	for _, id := range c.order {
		li := *c.lines[id]
		li.Tags = copyTags(li.Tags)
		out = append(out, li)
	}
	return out
}

func (c *Cart) Get(id string) (LineItem, bool) {
	li, ok := c.lines[id]
	if !ok {
		return LineItem{}, false
	}
	out := *li
	out.Tags = copyTags(li.Tags)
	return out, true
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) State() State {
	if c.IsEmpty() {
		return StateEmpty
	}
	return StatePopulated
}

func copyTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
