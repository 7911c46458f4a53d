package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront/internal/api"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/models"
	"storefront/internal/phone"
	"storefront/internal/session"
	"storefront/internal/ui"
)

// app drives the ordering flow in the terminal: country, store, catalog,
// configuration, cart, checkout. Every remote failure prints a message and
// returns to a prompt; nothing here is fatal.
type app struct {
	in     *bufio.Scanner
	out    io.Writer
	client *api.Client
	sess   *session.Session
	basket *cart.Cart

	// supplements are fetched once per run, on first use
	supplements *models.SupplementsResponse
	// eof flips when stdin closes so the prompt loops stop
	eof bool
}

func (a *app) run(ctx context.Context) error {
	fmt.Fprintln(a.out, "=== Planet Kebab ===")

	if _, ok := a.sess.CountryCode(); !ok {
		a.selectCountry()
	}
	if storeID, ok := a.sess.StoreID(); ok {
		// a restored session keeps its store; show which one
		if store, err := a.client.Store(ctx, storeID); err == nil {
			fmt.Fprintf(a.out, "Magasin : %s\n", store.Name)
		}
	} else {
		a.selectStore(ctx)
	}

	for !a.eof {
		fmt.Fprintf(a.out, "\n[1] Produits  [2] Panier (%d article(s), %s)  [3] Commander  [4] Changer de magasin  [q] Quitter\n",
			a.basket.ItemsCount(), ui.FormatPrice(a.basket.Subtotal()))

		switch a.prompt("Choix") {
		case "1":
			a.browseProducts(ctx)
		case "2":
			a.reviewCart()
		case "3":
			a.checkout(ctx)
		case "4":
			a.selectStore(ctx)
		case "q":
			return nil
		}
	}
	return nil
}

func (a *app) selectCountry() {
	fmt.Fprintln(a.out, "\nOù êtes-vous ?")
	for i, c := range phone.Countries {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, c.Label)
	}

	for !a.eof {
		idx, ok := a.promptInt("Pays")
		if !ok || idx < 1 || idx > len(phone.Countries) {
			continue
		}
		a.sess.SetCountryCode(phone.Countries[idx-1].Code)
		return
	}
}

func (a *app) selectStore(ctx context.Context) {
	countryCode, ok := a.sess.CountryCode()
	if !ok {
		a.selectCountry()
		countryCode, _ = a.sess.CountryCode()
	}

	stores, err := a.client.Stores(ctx, countryCode)
	if err != nil {
		fmt.Fprintln(a.out, "Erreur lors du chargement des magasins")
		return
	}
	if len(stores) == 0 {
		fmt.Fprintln(a.out, "Aucun magasin disponible")
		return
	}

	fmt.Fprintln(a.out, "\nSélectionne ton magasin :")
	for i, s := range stores {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, s.Name)
	}

	for !a.eof {
		idx, ok := a.promptInt("Magasin")
		if !ok || idx < 1 || idx > len(stores) {
			continue
		}
		selected := stores[idx-1]
		a.sess.SetStoreID(selected.ID)
		a.sess.SetCountryID(selected.CountryID)
		return
	}
}

func (a *app) browseProducts(ctx context.Context) {
	storeID, ok := a.sess.StoreID()
	if !ok {
		a.selectStore(ctx)
		return
	}

	products, err := a.client.Products(ctx, storeID)
	if err != nil {
		fmt.Fprintln(a.out, "Erreur lors du chargement des produits")
		return
	}

	fmt.Fprintln(a.out, "\n  [0] TOUS")
	for i, c := range catalog.Categories {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, c.Label)
	}
	idx, ok := a.promptInt("Catégorie")
	if !ok || idx < 0 || idx > len(catalog.Categories) {
		return
	}
	category := ""
	if idx > 0 {
		category = catalog.Categories[idx-1].ID
	}

	filtered := catalog.FilterByCategory(products, category)
	if len(filtered) == 0 {
		fmt.Fprintln(a.out, "Aucun produit dans cette catégorie")
		return
	}

	fmt.Fprintln(a.out)
	for i, p := range filtered {
		fmt.Fprintf(a.out, "  [%d] %s — %s\n", i+1, p.Name, ui.FormatPrice(p.PriceCents))
		if p.Description != "" {
			fmt.Fprintf(a.out, "      %s\n", p.Description)
		}
	}

	idx, ok = a.promptInt("Produit (0 pour revenir)")
	if !ok || idx < 1 || idx > len(filtered) {
		return
	}
	a.configureProduct(ctx, filtered[idx-1])
}

// configureProduct walks the supplement choices for a product and adds the
// result to the cart.
func (a *app) configureProduct(ctx context.Context, product models.Product) {
	quantity := catalog.MinQuantity
	if q, ok := a.promptInt(fmt.Sprintf("Quantité [%d-%d]", catalog.MinQuantity, catalog.MaxQuantity)); ok {
		quantity = catalog.ClampQuantity(q)
	}

	var supplements models.CartItemSupplements
	supplementsPrice := 0

	if catalog.AllowsSupplements(product.Category) {
		supp, err := a.loadSupplements(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Erreur lors du chargement des suppléments")
			return
		}

		supplements.Pain = a.pickOne("Pain", supp.Pains, true)
		supplements.Frites = a.pickOne("Frites", supp.Frites, false)
		supplements.Sauces = a.pickMany("Sauces", supp.Sauces)
		supplementsPrice = catalog.SupplementsPrice(supplements, supp.Frites)
	}

	a.basket.Add(product, quantity, supplements, supplementsPrice)
	total := quantity * (product.PriceCents + supplementsPrice)
	fmt.Fprintf(a.out, "Ajouté : %d × %s — %s\n", quantity, product.Name, ui.FormatPrice(total))
}

func (a *app) loadSupplements(ctx context.Context) (*models.SupplementsResponse, error) {
	if a.supplements != nil {
		return a.supplements, nil
	}
	supp, err := a.client.Supplements(ctx)
	if err != nil {
		return nil, err
	}
	a.supplements = supp
	return supp, nil
}

// pickOne offers a single choice from a supplement list. When defaultFirst
// is set the first option is preselected, as the product modal does for
// bread.
func (a *app) pickOne(label string, options []models.Supplement, defaultFirst bool) string {
	if len(options) == 0 {
		return ""
	}

	fmt.Fprintf(a.out, "%s :\n", label)
	fmt.Fprintln(a.out, "  [0] Aucun")
	for i, opt := range options {
		line := fmt.Sprintf("  [%d] %s", i+1, opt.Name)
		if opt.PriceCents > 0 {
			line += " (+" + ui.FormatPrice(opt.PriceCents) + ")"
		}
		fmt.Fprintln(a.out, line)
	}

	idx, ok := a.promptInt(label)
	if !ok {
		if defaultFirst {
			return options[0].Name
		}
		return ""
	}
	if idx < 1 || idx > len(options) {
		return ""
	}
	return options[idx-1].Name
}

// pickMany reads a comma-separated list of option numbers.
func (a *app) pickMany(label string, options []models.Supplement) []string {
	if len(options) == 0 {
		return nil
	}

	fmt.Fprintf(a.out, "%s (numéros séparés par des virgules, vide pour aucune) :\n", label)
	for i, opt := range options {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, opt.Name)
	}

	var chosen []string
	for _, part := range strings.Split(a.prompt(label), ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || idx < 1 || idx > len(options) {
			continue
		}
		name := options[idx-1].Name
		if !contains(chosen, name) {
			chosen = append(chosen, name)
		}
	}
	return chosen
}

func (a *app) reviewCart() {
	items := a.basket.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Votre panier est vide")
		return
	}

	fmt.Fprintln(a.out, "\nMon Panier")
	for i, item := range items {
		fmt.Fprintf(a.out, "  [%d] %d × %s — %s\n", i+1, item.Quantity, item.Name, ui.FormatPrice(item.TotalPrice))
		if summary := ui.FormatSupplements(item.Supplements); summary != "" {
			fmt.Fprintf(a.out, "      %s\n", summary)
		}
	}
	fmt.Fprintf(a.out, "  Total : %s\n", ui.FormatPrice(a.basket.Subtotal()))

	fmt.Fprintln(a.out, "  +N / -N pour ajuster la quantité, dN pour supprimer, vide pour revenir")
	input := a.prompt("Panier")
	if input == "" {
		return
	}

	op := input[0]
	idx, err := strconv.Atoi(input[1:])
	if err != nil {
		return
	}
	index := idx - 1

	switch op {
	case '+':
		a.basket.ChangeQty(index, 1)
	case '-':
		a.basket.ChangeQty(index, -1)
	case 'd':
		a.basket.Remove(index)
	}
}

func (a *app) checkout(ctx context.Context) {
	if len(a.basket.Items()) == 0 {
		fmt.Fprintln(a.out, "Votre panier est vide")
		return
	}
	storeID, ok := a.sess.StoreID()
	if !ok {
		a.selectStore(ctx)
		return
	}

	zones, err := a.client.DeliveryZones(ctx, storeID)
	if err != nil {
		fmt.Fprintln(a.out, "Erreur lors du chargement des zones de livraison")
		return
	}

	fmt.Fprintln(a.out, "\nFinaliser la commande")
	form := checkout.Form{
		Name:  a.prompt("Nom complet"),
		Phone: a.prompt("Numéro de téléphone"),
	}

	fmt.Fprintln(a.out, "Zone de livraison :")
	for i, z := range zones {
		fmt.Fprintf(a.out, "  [%d] %s — %s\n", i+1, z.Name, ui.FormatPrice(z.DeliveryFeeCents))
	}
	deliveryFee := 0
	if idx, ok := a.promptInt("Zone"); ok && idx >= 1 && idx <= len(zones) {
		form.DeliveryZoneID = zones[idx-1].ID
		deliveryFee = zones[idx-1].DeliveryFeeCents
	}
	form.Note = a.prompt("Note (optionnel)")

	subtotal := a.basket.Subtotal()
	fmt.Fprintf(a.out, "\nSous-total : %s\n", ui.FormatPrice(subtotal))
	fmt.Fprintf(a.out, "Frais de livraison : %s\n", ui.FormatPrice(deliveryFee))
	fmt.Fprintf(a.out, "Total : %s\n", ui.FormatPrice(subtotal+deliveryFee))

	resp, err := checkout.Submit(ctx, a.client, a.sess, a.basket, form, zones)
	if err != nil {
		var fieldErrs checkout.FieldErrors
		if errors.As(err, &fieldErrs) {
			for field, msg := range fieldErrs {
				fmt.Fprintf(a.out, "  %s : %s\n", field, msg)
			}
			return
		}
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintln(a.out, "\nCommande confirmée !")
	fmt.Fprintf(a.out, "Numéro de commande : %s\n", resp.OrderNumber)
	fmt.Fprintln(a.out, "Vous recevrez un appel de confirmation dans quelques instants.")
}

func (a *app) prompt(label string) string {
	fmt.Fprintf(a.out, "%s > ", label)
	if !a.in.Scan() {
		a.eof = true
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) promptInt(label string) (int, bool) {
	value, err := strconv.Atoi(a.prompt(label))
	if err != nil {
		return 0, false
	}
	return value, true
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
