package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dukaforge/cartbox/internal/session"
	"github.com/dukaforge/cartbox/pkg/types"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

// recorder captures emitted events in order.
type recorder struct {
	events   []string
	payloads []any
}

func (r *recorder) Emit(event string, payload any) {
	r.events = append(r.events, event)
	r.payloads = append(r.payloads, payload)
}

func (r *recorder) last() (string, any) {
	if len(r.events) == 0 {
		return "", nil
	}
	return r.events[len(r.events)-1], r.payloads[len(r.payloads)-1]
}

func newTestCart(t *testing.T) (*Cart, *recorder) {
	t.Helper()
	rec := &recorder{}
	c, err := New(session.NewMemory(), rec, types.Config{TaxRate: decimal.NewFromFloat(0.06)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, rec
}

func addSku1(t *testing.T, c *Cart, qty string) *types.LineItem {
	t.Helper()
	li, err := c.AddItem(types.ItemSpec{
		ID:           "sku1",
		Name:         "Widget",
		Price:        dec(t, "50.00"),
		Quantity:     dec(t, qty),
		Discountable: true,
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	return li
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(session.NewMemory(), nil, types.Config{TaxRate: decimal.NewFromInt(2)})
	if err != types.ErrTaxRateOutOfRange {
		t.Fatalf("New error = %v, want ErrTaxRateOutOfRange", err)
	}
}

func TestAddItem(t *testing.T) {
	c, rec := newTestCart(t)
	li := addSku1(t, c, "2")

	if li.Kind != types.KindItem {
		t.Errorf("Kind = %q, want item", li.Kind)
	}
	if !li.TaxApplies || li.TaxIncluded {
		t.Errorf("tax flags = applies:%v included:%v", li.TaxApplies, li.TaxIncluded)
	}
	if !li.TaxRate.Equal(dec(t, "0.06")) {
		t.Errorf("TaxRate = %s, want configured 0.06", li.TaxRate)
	}

	event, payload := rec.last()
	if event != types.EventItemAdded {
		t.Errorf("event = %q, want %q", event, types.EventItemAdded)
	}
	if payload.(*types.LineItem).RowID != li.RowID {
		t.Error("item_added payload is not the stored line")
	}

	if got, ok := c.GetItem(li.RowID); !ok || !got.Quantity.Equal(dec(t, "2")) {
		t.Errorf("GetItem = %+v, %v", got, ok)
	}
}

func TestAddItemMergesOnIdentity(t *testing.T) {
	c, rec := newTestCart(t)
	addSku1(t, c, "2")
	merged := addSku1(t, c, "3")

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("items = %d rows, want 1", len(items))
	}
	if !merged.Quantity.Equal(dec(t, "5")) {
		t.Errorf("merged quantity = %s, want 5", merged.Quantity)
	}

	// The second item_added payload carries the merged line, not the delta.
	_, payload := rec.last()
	if !payload.(*types.LineItem).Quantity.Equal(dec(t, "5")) {
		t.Error("item_added payload is the delta, want the merged line")
	}
}

func TestAddItemDistinctOptionsDistinctRows(t *testing.T) {
	c, _ := newTestCart(t)
	spec := types.ItemSpec{
		ID: "sku1", Name: "Widget", Price: dec(t, "50.00"), Quantity: decimal.NewFromInt(1),
	}

	spec.Options = types.Options{{Key: "size", Value: "L"}}
	if _, err := c.AddItem(spec); err != nil {
		t.Fatal(err)
	}
	spec.Options = types.Options{{Key: "size", Value: "M"}}
	if _, err := c.AddItem(spec); err != nil {
		t.Fatal(err)
	}

	if len(c.Items()) != 2 {
		t.Errorf("items = %d rows, want 2", len(c.Items()))
	}
}

func TestAddItemValidation(t *testing.T) {
	c, _ := newTestCart(t)
	tests := []struct {
		name    string
		spec    types.ItemSpec
		wantErr error
	}{
		{"zero quantity", types.ItemSpec{ID: "x", Name: "x", Quantity: decimal.Zero}, types.ErrInvalidQuantity},
		{"negative quantity", types.ItemSpec{ID: "x", Name: "x", Quantity: decimal.NewFromInt(-1)}, types.ErrInvalidQuantity},
		{"empty id", types.ItemSpec{Name: "x", Quantity: decimal.NewFromInt(1)}, types.ErrInvalidID},
		{"empty name", types.ItemSpec{ID: "x", Quantity: decimal.NewFromInt(1)}, types.ErrInvalidName},
		{"negative price", types.ItemSpec{ID: "x", Name: "x", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(-1)}, types.ErrInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.AddItem(tt.spec); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddItem error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

type catalogProduct struct {
	sku   string
	title string
	price decimal.Decimal
}

func (p catalogProduct) BuyableIdentifier(types.Options) string     { return p.sku }
func (p catalogProduct) BuyableName(types.Options) string           { return p.title }
func (p catalogProduct) BuyableDescription(types.Options) string    { return "" }
func (p catalogProduct) BuyablePrice(types.Options) decimal.Decimal { return p.price }
func (p catalogProduct) BuyableDiscountable(types.Options) bool     { return true }

func TestAddItemFromBuyable(t *testing.T) {
	c, _ := newTestCart(t)
	p := catalogProduct{sku: "prod-1", title: "Lamp", price: dec(t, "25.00")}

	li, err := c.AddItemFromBuyable(p, decimal.NewFromInt(2), nil)
	if err != nil {
		t.Fatal(err)
	}
	if li.ID != "prod-1" || !li.Price.Equal(dec(t, "25.00")) {
		t.Errorf("line from buyable = %+v", li)
	}
	if li.AssociatedModel != "cart.catalogProduct" {
		t.Errorf("AssociatedModel = %q", li.AssociatedModel)
	}
}

func TestAddDetail(t *testing.T) {
	c, rec := newTestCart(t)
	li, err := c.AddDetail(types.ItemSpec{
		ID:       "shipping",
		Name:     "Shipping",
		Price:    dec(t, "10.00"),
		Quantity: decimal.NewFromInt(1),
		Kind:     types.KindShipping,
	})
	if err != nil {
		t.Fatal(err)
	}

	// Details carry the fixed 60% rate, exclusive.
	if !li.TaxRate.Equal(dec(t, "0.60")) {
		t.Errorf("detail TaxRate = %s, want 0.60", li.TaxRate)
	}
	if !li.Total().Equal(dec(t, "16.00")) {
		t.Errorf("detail Total = %s, want 16.00", li.Total())
	}
	if li.Discountable {
		t.Error("detail defaulted to discountable")
	}

	if event, _ := rec.last(); event != types.EventDetailAdded {
		t.Errorf("event = %q, want %q", event, types.EventDetailAdded)
	}
	if len(c.Items()) != 0 {
		t.Error("detail landed in the items partition")
	}
}

func TestAddDetailRejectsItemKind(t *testing.T) {
	c, _ := newTestCart(t)
	_, err := c.AddDetail(types.ItemSpec{
		ID: "x", Name: "x", Quantity: decimal.NewFromInt(1), Kind: types.KindItem,
	})
	if !errors.Is(err, types.ErrInvalidKind) {
		t.Errorf("AddDetail(kind=item) error = %v, want ErrInvalidKind", err)
	}
}

func TestUpdateItemQuantity(t *testing.T) {
	c, rec := newTestCart(t)
	li := addSku1(t, c, "2")

	updated, err := c.UpdateItemQuantity(li.RowID, decimal.NewFromInt(7))
	if err != nil {
		t.Fatal(err)
	}
	if !updated.Quantity.Equal(dec(t, "7")) {
		t.Errorf("quantity = %s, want 7", updated.Quantity)
	}
	if event, _ := rec.last(); event != types.EventUpdated {
		t.Errorf("event = %q, want %q", event, types.EventUpdated)
	}
}

func TestUpdateItemToZeroRemovesRow(t *testing.T) {
	c, rec := newTestCart(t)
	li := addSku1(t, c, "2")

	updated, err := c.UpdateItemQuantity(li.RowID, decimal.Zero)
	if err != nil {
		t.Fatal(err)
	}
	if updated != nil {
		t.Errorf("deletion path returned a line: %+v", updated)
	}
	if _, ok := c.GetItem(li.RowID); ok {
		t.Error("row still present after update to zero")
	}
	// Deletion goes through the remove flow, not the updated event.
	if event, _ := rec.last(); event != types.EventItemRemoved {
		t.Errorf("event = %q, want %q", event, types.EventItemRemoved)
	}
}

func TestUpdateItemUnknownRow(t *testing.T) {
	c, _ := newTestCart(t)
	if _, err := c.UpdateItemQuantity("missing", decimal.NewFromInt(1)); !errors.Is(err, types.ErrRowNotFound) {
		t.Errorf("error = %v, want ErrRowNotFound", err)
	}
}

func TestUpdateItemPatchChangesIdentity(t *testing.T) {
	c, _ := newTestCart(t)
	li := addSku1(t, c, "2")
	oldRowID := li.RowID

	id := "sku2"
	updated, err := c.UpdateItem(li.RowID, types.ItemPatch{ID: &id})
	if err != nil {
		t.Fatal(err)
	}
	if updated.RowID == oldRowID {
		t.Fatal("RowID unchanged after identity patch")
	}
	if _, ok := c.GetItem(oldRowID); ok {
		t.Error("old row still present after re-key")
	}
	if got, ok := c.GetItem(updated.RowID); !ok || got.ID != "sku2" {
		t.Errorf("re-keyed row = %+v, %v", got, ok)
	}
}

func TestUpdateItemMergesIntoExistingIdentity(t *testing.T) {
	c, _ := newTestCart(t)
	first := addSku1(t, c, "2")

	other, err := c.AddItem(types.ItemSpec{
		ID: "sku2", Name: "Gadget", Price: dec(t, "30.00"), Quantity: decimal.NewFromInt(3),
	})
	if err != nil {
		t.Fatal(err)
	}

	// Re-identify sku2 as sku1: quantities must sum onto one row.
	id := "sku1"
	merged, err := c.UpdateItem(other.RowID, types.ItemPatch{ID: &id})
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Items()) != 1 {
		t.Fatalf("items = %d rows, want 1", len(c.Items()))
	}
	if !merged.Quantity.Equal(dec(t, "5")) {
		t.Errorf("merged quantity = %s, want 5", merged.Quantity)
	}
	if merged.RowID != first.RowID {
		t.Error("merged row identity differs from existing row")
	}
}

func TestRemoveItem(t *testing.T) {
	c, rec := newTestCart(t)
	li := addSku1(t, c, "1")

	if err := c.RemoveItem(li.RowID); err != nil {
		t.Fatal(err)
	}
	if event, payload := rec.last(); event != types.EventItemRemoved ||
		payload.(*types.LineItem).RowID != li.RowID {
		t.Errorf("event = %q payload = %+v", event, payload)
	}
	if err := c.RemoveItem(li.RowID); !errors.Is(err, types.ErrRowNotFound) {
		t.Errorf("second remove error = %v, want ErrRowNotFound", err)
	}
}

func TestRemoveDetail(t *testing.T) {
	c, rec := newTestCart(t)
	li, err := c.AddDetail(types.ItemSpec{
		ID: "fee", Name: "Admin fee", Price: dec(t, "5"), Quantity: decimal.NewFromInt(1), Kind: types.KindAdminFees,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := c.RemoveDetail(li.RowID); err != nil {
		t.Fatal(err)
	}
	if event, _ := rec.last(); event != types.EventDetailRemoved {
		t.Errorf("event = %q, want %q", event, types.EventDetailRemoved)
	}
	if err := c.RemoveDetail("missing"); !errors.Is(err, types.ErrRowNotFound) {
		t.Errorf("error = %v, want ErrRowNotFound", err)
	}
}

func TestAttributes(t *testing.T) {
	c, rec := newTestCart(t)

	c.AddAttribute("coupon", "WELCOME10")
	if event, payload := rec.last(); event != types.EventAttributeAdded ||
		payload.(Attribute).Key != "coupon" {
		t.Errorf("event = %q payload = %+v", event, payload)
	}

	if v, ok := c.Attribute("coupon"); !ok || v != "WELCOME10" {
		t.Errorf("Attribute = %v, %v", v, ok)
	}

	if !c.RemoveAttribute("coupon") {
		t.Error("RemoveAttribute reported absent")
	}
	if event, _ := rec.last(); event != types.EventAttributeRemoved {
		t.Errorf("event = %q, want %q", event, types.EventAttributeRemoved)
	}

	before := len(rec.events)
	if c.RemoveAttribute("coupon") {
		t.Error("second RemoveAttribute reported present")
	}
	if len(rec.events) != before {
		t.Error("removing an absent attribute emitted an event")
	}
}

func TestSearch(t *testing.T) {
	c, _ := newTestCart(t)
	addSku1(t, c, "1")
	if _, err := c.AddItem(types.ItemSpec{
		ID: "sku2", Name: "Gadget", Price: dec(t, "75.00"), Quantity: decimal.NewFromInt(1),
	}); err != nil {
		t.Fatal(err)
	}

	pricey := c.SearchItems(func(li *types.LineItem) bool {
		return li.Price.GreaterThan(dec(t, "60"))
	})
	if len(pricey) != 1 || pricey[0].ID != "sku2" {
		t.Errorf("SearchItems = %+v", pricey)
	}

	if li, ok := c.GetItemByID("sku1"); !ok || li.Name != "Widget" {
		t.Errorf("GetItemByID = %+v, %v", li, ok)
	}
}

func TestAssociate(t *testing.T) {
	c, _ := newTestCart(t)
	li := addSku1(t, c, "1")

	t.Run("unresolvable type name", func(t *testing.T) {
		err := c.Associate(li.RowID, "models.Product")
		if !errors.Is(err, types.ErrUnknownModel) {
			t.Errorf("error = %v, want ErrUnknownModel", err)
		}
	})

	t.Run("registered type name", func(t *testing.T) {
		reg := types.NewModelRegistry()
		reg.Register("models.Product")
		c.SetModelRegistry(reg)

		if err := c.Associate(li.RowID, "models.Product"); err != nil {
			t.Fatal(err)
		}
		got, _ := c.GetItem(li.RowID)
		if got.AssociatedModel != "models.Product" {
			t.Errorf("AssociatedModel = %q", got.AssociatedModel)
		}
	})

	t.Run("live value uses dynamic type", func(t *testing.T) {
		if err := c.Associate(li.RowID, catalogProduct{}); err != nil {
			t.Fatal(err)
		}
		got, _ := c.GetItem(li.RowID)
		if got.AssociatedModel != "cart.catalogProduct" {
			t.Errorf("AssociatedModel = %q", got.AssociatedModel)
		}
	})

	t.Run("unknown row", func(t *testing.T) {
		if err := c.Associate("missing", catalogProduct{}); !errors.Is(err, types.ErrRowNotFound) {
			t.Errorf("error = %v, want ErrRowNotFound", err)
		}
	})
}

func TestTotalsScenario(t *testing.T) {
	c, _ := newTestCart(t)
	addSku1(t, c, "2") // 100.00 net, 6% exclusive

	if _, err := c.AddDetail(types.ItemSpec{
		ID: "shipping", Name: "Shipping", Price: dec(t, "10.00"),
		Quantity: decimal.NewFromInt(1), Kind: types.KindShipping,
	}); err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"Subtotal", c.Subtotal(), "100.00"},
		{"ItemsTotal without tax", c.ItemsTotal(false), "100.00"},
		{"ItemsTotal with tax", c.ItemsTotal(true), "106.00"},
		{"ItemsTaxedTotal", c.ItemsTaxedTotal(), "6.00"},
		{"DetailsTotal with tax", c.DetailsTotal(true), "16.00"},
		{"DetailsTaxedTotal", c.DetailsTaxedTotal(), "6.00"},
		{"TaxTotal", c.TaxTotal(), "12.00"},
		{"Total", c.Total(), "122.00"},
		{"Count", c.Count(), "2"},
	}
	for _, check := range checks {
		if !check.got.Equal(dec(t, check.want)) {
			t.Errorf("%s = %s, want %s", check.name, check.got, check.want)
		}
	}
	if c.Empty() {
		t.Error("Empty() true for a populated cart")
	}
}

func TestClearAndDestroy(t *testing.T) {
	store := session.NewMemory()
	c, err := New(store, nil, types.Config{})
	if err != nil {
		t.Fatal(err)
	}
	addSku1(t, c, "1")
	if _, err := c.AddDetail(types.ItemSpec{
		ID: "fee", Name: "Fee", Price: dec(t, "1"), Quantity: decimal.NewFromInt(1), Kind: types.KindAdminFees,
	}); err != nil {
		t.Fatal(err)
	}
	c.AddAttribute("note", "gift")

	c.Clear()
	content := c.Content()
	if len(content.Items) != 0 || len(content.Details) != 0 || len(content.Attributes) != 0 {
		t.Errorf("Clear left content: %+v", content)
	}
	if !store.Has("cart.default") {
		t.Error("Clear removed the session entry; only Destroy should")
	}

	c.Destroy()
	if store.Has("cart.default") {
		t.Error("Destroy left the session entry")
	}
}

func TestHandleLogout(t *testing.T) {
	store := session.NewMemory()

	c, err := New(store, nil, types.Config{DestroyOnLogout: true})
	if err != nil {
		t.Fatal(err)
	}
	addSku1(t, c, "1")
	c.HandleLogout()
	if store.Has("cart.default") {
		t.Error("HandleLogout kept the cart with DestroyOnLogout set")
	}

	c2, err := New(store, nil, types.Config{})
	if err != nil {
		t.Fatal(err)
	}
	addSku1(t, c2, "1")
	c2.HandleLogout()
	if !store.Has("cart.default") {
		t.Error("HandleLogout destroyed the cart without DestroyOnLogout")
	}
}

func TestNamedInstancesIndependent(t *testing.T) {
	store := session.NewMemory()
	c, err := New(store, nil, types.Config{})
	if err != nil {
		t.Fatal(err)
	}

	addSku1(t, c, "1")
	c.SetInstance("wishlist")
	if c.Instance() != "wishlist" {
		t.Fatalf("Instance = %q", c.Instance())
	}
	if len(c.Items()) != 0 {
		t.Error("wishlist instance sees default instance items")
	}

	if _, err := c.AddItem(types.ItemSpec{
		ID: "sku9", Name: "Dream", Price: dec(t, "999"), Quantity: decimal.NewFromInt(1),
	}); err != nil {
		t.Fatal(err)
	}

	c.SetInstance("")
	if len(c.Items()) != 1 {
		t.Error("default instance items lost after instance switch")
	}
}

func TestConfiguredDefaultInstance(t *testing.T) {
	c, err := New(session.NewMemory(), nil, types.Config{DefaultInstance: "quote"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Instance() != "quote" {
		t.Errorf("Instance = %q, want quote", c.Instance())
	}
}
