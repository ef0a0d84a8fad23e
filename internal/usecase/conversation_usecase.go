package usecase

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"pedezap/internal/domain/entities"

	"github.com/google/uuid"
)

// Inbound is one customer message handed to the driver: free text plus an
// optional attached image (used as PIX proof of payment).
type Inbound struct {
	Text     string
	ImageURL string
}

// TurnResult is the outcome of one conversation turn. The caller must send
// Response back over the messaging channel, send the catalog image when
// SendMenu is set, and persist FinalizedOrder (then clear the session) when
// present.
type TurnResult struct {
	Response       string
	NextStep       entities.Step
	CartUpdate     entities.Cart
	SendMenu       bool
	FinalizedOrder *entities.Order
}

// finalizeWords signal the customer is done picking items.
var finalizeWords = []string{
	"finalizar", "finaliza", "fechar", "fecha", "fechou",
	"pronto", "so isso", "é isso", "e isso", "apenas isso",
	"sim", "concluir", "encerrar",
}

// removalWords signal the customer wants an item out of the cart.
var removalWords = []string{
	"remover", "remove", "removi", "tirar", "tira", "excluir", "apagar",
}

// IConversationUseCase drives one conversation turn. Pure with respect to
// I/O: no network, disk or session storage is touched here.
type IConversationUseCase interface {
	ProcessMessage(session *entities.CustomerSession, in Inbound, store entities.StoreConfig, catalog []entities.Product, promotions []entities.Promotion) TurnResult
}

type ConversationUseCase struct {
	matcher *ProductMatcher
	rng     *rand.Rand
	now     func() time.Time
	newID   func() string
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

type ConversationOption func(*ConversationUseCase)

// WithRandSource fixes the source behind template selection, so tests can
// seed it.
func WithRandSource(src rand.Source) ConversationOption {
	return func(u *ConversationUseCase) { u.rng = rand.New(src) }
}

// WithClock injects the clock used for salutations and order timestamps.
func WithClock(now func() time.Time) ConversationOption {
	return func(u *ConversationUseCase) { u.now = now }
}

// WithIDGenerator injects the order id factory.
func WithIDGenerator(newID func() string) ConversationOption {
	return func(u *ConversationUseCase) { u.newID = newID }
}

func NewConversationUseCase(opts ...ConversationOption) *ConversationUseCase {
	u := &ConversationUseCase{
		matcher: NewProductMatcher(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// orderTotals is the single place where order money is computed. Delivery fee
// applies only to delivery orders; rounding happens at display time only.
func orderTotals(cart entities.Cart, store entities.StoreConfig, delivery entities.DeliveryType) (subtotal, fee, total float64) {
	subtotal = cart.Subtotal()
	if delivery == entities.DeliveryTypeEntrega {
		fee = store.DeliveryFee
	}
	return subtotal, fee, subtotal + fee
}

// containsAnyWord reports whether any of the phrases occurs in the text at
// word boundaries. Operates on corrected normalized text.
func (u *ConversationUseCase) containsAnyWord(corrected string, phrases []string) bool {
	padded := " " + corrected + " "
	for _, ph := range phrases {
		if strings.Contains(padded, " "+u.matcher.Normalize(ph)+" ") {
			return true
		}
	}
	return false
}

// ProcessMessage advances the session one turn. It mutates the session's
// cart, customer data and step, and always returns a reply and a valid next
// step, for any input including empty strings and gibberish.
func (u *ConversationUseCase) ProcessMessage(session *entities.CustomerSession, in Inbound, store entities.StoreConfig, catalog []entities.Product, promotions []entities.Promotion) TurnResult {
	if !session.Step.Valid() {
		session.Step = entities.StepGreeting
	}

	var res TurnResult
	switch session.Step {
	case entities.StepGreeting:
		res = u.handleGreeting(session, in, store, promotions)
	case entities.StepOrdering:
		res = u.handleOrdering(session, in, store, catalog)
	case entities.StepDeliveryType:
		res = u.handleDeliveryType(session, in, store)
	case entities.StepAddressStreet, entities.StepAddressNumber,
		entities.StepAddressDistrict, entities.StepAddressCity,
		entities.StepAddressRef:
		res = u.handleAddress(session, in, store)
	case entities.StepCustomerName:
		res = u.handleCustomerName(session, in, store)
	case entities.StepPaymentMethod:
		res = u.handlePaymentMethod(session, in, store)
	case entities.StepCashAmount:
		res = u.handleCashAmount(session, in, store)
	case entities.StepWaitingPixProof:
		res = u.handlePixProof(session, in, store)
	case entities.StepCompleted:
		res = TurnResult{
			Response: "Seu pedido já foi confirmado e está em preparo! 🍳 Qualquer novidade eu te aviso por aqui.",
			NextStep: entities.StepCompleted,
		}
	}

	session.Step = res.NextStep
	res.CartUpdate = session.Cart
	return res
}

func (u *ConversationUseCase) handleGreeting(session *entities.CustomerSession, in Inbound, store entities.StoreConfig, promotions []entities.Promotion) TurnResult {
	corrected := u.matcher.CorrectTypos(u.matcher.Normalize(in.Text))

	if session.CustomerMessageCount() >= 3 {
		switch {
		case corrected == "1" || u.containsAnyWord(corrected, []string{"cardapio", "menu"}):
			return TurnResult{
				Response: "Aqui está o nosso cardápio! 👇 É só me dizer o que você quer.",
				NextStep: entities.StepOrdering,
				SendMenu: true,
			}
		case corrected == "2" || u.containsAnyWord(corrected, []string{"promocao", "promocoes"}):
			return TurnResult{
				Response: formatPromotions(promotions),
				NextStep: entities.StepOrdering,
			}
		}
	}

	return TurnResult{
		Response: u.welcomeMessage(store),
		NextStep: entities.StepOrdering,
		SendMenu: true,
	}
}

func (u *ConversationUseCase) welcomeMessage(store entities.StoreConfig) string {
	greeting := store.Greeting
	if greeting == "" {
		greeting = "Seja bem-vindo!"
	}
	name := store.Name
	if name == "" {
		name = "nossa loja"
	}
	return fmt.Sprintf("%s! %s 😊\nVocê está falando com o atendimento do *%s*.\n\nDigite *1* para ver o cardápio ou *2* para as promoções — ou já me diga o que deseja pedir!",
		salutation(u.now()), greeting, name)
}

func (u *ConversationUseCase) handleOrdering(session *entities.CustomerSession, in Inbound, store entities.StoreConfig, catalog []entities.Product) TurnResult {
	corrected := u.matcher.CorrectTypos(u.matcher.Normalize(in.Text))

	if u.containsAnyWord(corrected, finalizeWords) {
		if session.Cart.IsEmpty() {
			return TurnResult{Response: u.pick(respEmptyCartFinalize), NextStep: entities.StepOrdering}
		}
		summary := fmt.Sprintf("Seu pedido:\n%s\n\nSubtotal: *R$ %s*\n\n%s",
			formatCart(session.Cart), formatPrice(session.Cart.Subtotal()), u.pick(respAskDeliveryType))
		return TurnResult{Response: summary, NextStep: entities.StepDeliveryType}
	}

	if u.containsAnyWord(corrected, removalWords) {
		return u.handleRemoval(session, corrected, catalog)
	}

	if found := u.matcher.FindMultipleProducts(in.Text, catalog); len(found) > 0 {
		var added strings.Builder
		for _, p := range found {
			qty := u.matcher.ExtractQuantityForProduct(in.Text, p)
			session.Cart = session.Cart.Add(p, qty)
			fmt.Fprintf(&added, "▪ %dx %s\n", qty, p.Name)
		}
		body := fmt.Sprintf("%s\nSeu carrinho:\n%s\n\nAlgo mais? É só pedir, ou digite *finalizar*!",
			strings.TrimRight(added.String(), "\n"), formatCart(session.Cart))
		return TurnResult{
			Response: fmt.Sprintf(u.pick(respProductsAdded), body),
			NextStep: entities.StepOrdering,
		}
	}

	match := u.matcher.MatchProducts(in.Text, catalog)
	if match.BestMatch != nil {
		session.Cart = session.Cart.Add(*match.BestMatch, 1)
		reply := fmt.Sprintf(u.pick(respProductAdded), match.BestMatch.Name)
		return TurnResult{
			Response: fmt.Sprintf("%s\nSeu carrinho:\n%s", reply, formatCart(session.Cart)),
			NextStep: entities.StepOrdering,
		}
	}
	if len(match.Suggestions) > 0 {
		var b strings.Builder
		b.WriteString("Não tenho certeza do que você quis dizer 🤔 Seria um destes?\n")
		for _, s := range match.Suggestions {
			fmt.Fprintf(&b, "▪ %s — R$ %s\n", s.Product.Name, formatPrice(s.Product.Price))
		}
		b.WriteString("Me diga o nome completo do item!")
		return TurnResult{Response: b.String(), NextStep: entities.StepOrdering}
	}
	if session.Cart.IsEmpty() {
		return TurnResult{Response: u.pick(respAskProduct), NextStep: entities.StepOrdering}
	}
	return TurnResult{Response: u.pick(respProductNotFound), NextStep: entities.StepOrdering}
}

// handleRemoval resolves the removal target, subtracts a clamped quantity and
// drops emptied items. Never goes negative, never removes more than present.
func (u *ConversationUseCase) handleRemoval(session *entities.CustomerSession, corrected string, catalog []entities.Product) TurnResult {
	if session.Cart.IsEmpty() {
		return TurnResult{Response: u.pick(respEmptyCartRemoval), NextStep: entities.StepOrdering}
	}

	// Strip the removal verbs so they do not pollute name similarity.
	words := strings.Fields(corrected)
	kept := words[:0]
	for _, w := range words {
		verb := false
		for _, rw := range removalWords {
			if w == rw {
				verb = true
				break
			}
		}
		if !verb {
			kept = append(kept, w)
		}
	}
	target := strings.Join(kept, " ")

	match := u.matcher.MatchProducts(target, catalog)
	if match.BestMatch == nil {
		return TurnResult{
			Response: fmt.Sprintf(u.pick(respNotInCart), formatCart(session.Cart)),
			NextStep: entities.StepOrdering,
		}
	}
	if _, ok := session.Cart.Find(match.BestMatch.ID); !ok {
		return TurnResult{
			Response: fmt.Sprintf(u.pick(respNotInCart), formatCart(session.Cart)),
			NextStep: entities.StepOrdering,
		}
	}

	qty := 1
	if len(match.Numbers) > 0 {
		// Trailing number wins: "tira 2 pizza" and "remove pizza 2" both work.
		if n := match.Numbers[len(match.Numbers)-1]; n >= 1 {
			qty = n
		}
	}

	updated, removed, all := session.Cart.Remove(match.BestMatch.ID, qty)
	session.Cart = updated
	if all {
		return TurnResult{
			Response: fmt.Sprintf(u.pick(respItemRemovedAll), match.BestMatch.Name, formatCart(session.Cart)),
			NextStep: entities.StepOrdering,
		}
	}
	return TurnResult{
		Response: fmt.Sprintf(u.pick(respItemRemoved), removed, match.BestMatch.Name, formatCart(session.Cart)),
		NextStep: entities.StepOrdering,
	}
}

func (u *ConversationUseCase) handleDeliveryType(session *entities.CustomerSession, in Inbound, store entities.StoreConfig) TurnResult {
	corrected := u.matcher.CorrectTypos(u.matcher.Normalize(in.Text))

	switch {
	case corrected == "1" || u.containsAnyWord(corrected, []string{"entrega", "entregar", "delivery"}):
		session.CustomerData.DeliveryType = entities.DeliveryTypeEntrega
		return TurnResult{Response: u.pick(respAskStreet), NextStep: entities.StepAddressStreet}
	case corrected == "2" || u.containsAnyWord(corrected, []string{"retirada", "retirar", "balcao", "buscar"}):
		session.CustomerData.DeliveryType = entities.DeliveryTypeRetirada
		return TurnResult{Response: u.pick(respAskName), NextStep: entities.StepCustomerName}
	}
	return TurnResult{Response: u.pick(respDeliveryTypeRetry), NextStep: entities.StepDeliveryType}
}

func (u *ConversationUseCase) handleAddress(session *entities.CustomerSession, in Inbound, store entities.StoreConfig) TurnResult {
	text := strings.TrimSpace(in.Text)
	data := &session.CustomerData

	switch session.Step {
	case entities.StepAddressStreet:
		data.Street = text
		return TurnResult{Response: u.pick(respAskNumber), NextStep: entities.StepAddressNumber}
	case entities.StepAddressNumber:
		data.Number = text
		return TurnResult{Response: u.pick(respAskDistrict), NextStep: entities.StepAddressDistrict}
	case entities.StepAddressDistrict:
		data.District = text
		return TurnResult{Response: u.pick(respAskCity), NextStep: entities.StepAddressCity}
	case entities.StepAddressCity:
		data.City = text
		return TurnResult{Response: u.pick(respAskReference), NextStep: entities.StepAddressRef}
	}

	// address_reference: optional, empty input accepted.
	data.Reference = text
	data.Address = fmt.Sprintf("%s, %s - %s, %s", data.Street, data.Number, data.District, data.City)
	if data.Reference != "" {
		data.Address += fmt.Sprintf(" (ref: %s)", data.Reference)
	}

	summary := fmt.Sprintf("%s\n\nEntrega em: %s\n\n%s",
		formatOrderSummary(session.Cart, store, data.DeliveryType), data.Address, u.pick(respAskPayment))
	return TurnResult{Response: summary, NextStep: entities.StepPaymentMethod}
}

func (u *ConversationUseCase) handleCustomerName(session *entities.CustomerSession, in Inbound, store entities.StoreConfig) TurnResult {
	session.CustomerData.Name = strings.TrimSpace(in.Text)
	summary := fmt.Sprintf("%s\n\n%s",
		formatOrderSummary(session.Cart, store, session.CustomerData.DeliveryType), u.pick(respAskPayment))
	return TurnResult{Response: summary, NextStep: entities.StepPaymentMethod}
}

func (u *ConversationUseCase) handlePaymentMethod(session *entities.CustomerSession, in Inbound, store entities.StoreConfig) TurnResult {
	corrected := u.matcher.CorrectTypos(u.matcher.Normalize(in.Text))
	_, _, total := orderTotals(session.Cart, store, session.CustomerData.DeliveryType)

	switch {
	case corrected == "1" || u.containsAnyWord(corrected, []string{"pix"}):
		session.CustomerData.PaymentMethod = entities.PaymentMethodPix
		reply := fmt.Sprintf("Perfeito! 💳 Faça um PIX de *R$ %s* para a chave:\n\n`%s`\n\nDepois me envie a foto do comprovante para eu confirmar o pedido!",
			formatPrice(total), store.PixKey)
		return TurnResult{Response: reply, NextStep: entities.StepWaitingPixProof}
	case corrected == "2" || u.containsAnyWord(corrected, []string{"dinheiro"}):
		session.CustomerData.PaymentMethod = entities.PaymentMethodDinheiro
		return TurnResult{
			Response: fmt.Sprintf(u.pick(respAskCashAmount), formatPrice(total)),
			NextStep: entities.StepCashAmount,
		}
	case corrected == "3" || u.containsAnyWord(corrected, []string{"cartao", "credito", "debito"}):
		session.CustomerData.PaymentMethod = entities.PaymentMethodCartao
		order := u.finalize(session, store)
		return TurnResult{
			Response:       u.confirmationMessage(session, store, "Pagamento no *cartão* na entrega 💳"),
			NextStep:       entities.StepCompleted,
			FinalizedOrder: order,
		}
	}

	// A bare amount covering the total ("60" on a R$ 50 order) is taken as
	// cash payment with change, skipping the explicit "dinheiro" step.
	if amount, err := parseCashAmount(in.Text); err == nil && amount >= total {
		session.CustomerData.PaymentMethod = entities.PaymentMethodDinheiro
		session.CustomerData.CashAmount = amount
		session.CustomerData.Change = amount - total
		order := u.finalize(session, store)
		detail := fmt.Sprintf("Pagamento em *dinheiro* 💵 — troco de *R$ %s* para R$ %s", formatPrice(order.Change), formatPrice(amount))
		if order.Change == 0 {
			detail = "Pagamento em *dinheiro* 💵 — valor exato, sem troco"
		}
		return TurnResult{
			Response:       u.confirmationMessage(session, store, detail),
			NextStep:       entities.StepCompleted,
			FinalizedOrder: order,
		}
	}

	return TurnResult{Response: u.pick(respPaymentRetry), NextStep: entities.StepPaymentMethod}
}

// parseCashAmount accepts "27,50", "27.50", "R$ 27,50" and plain integers.
func parseCashAmount(text string) (float64, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.TrimPrefix(t, "r$")
	t = strings.TrimSuffix(t, "reais")
	t = strings.ReplaceAll(strings.TrimSpace(t), ",", ".")
	return strconv.ParseFloat(t, 64)
}

func (u *ConversationUseCase) handleCashAmount(session *entities.CustomerSession, in Inbound, store entities.StoreConfig) TurnResult {
	_, _, total := orderTotals(session.Cart, store, session.CustomerData.DeliveryType)

	amount, err := parseCashAmount(in.Text)
	if err != nil || amount < total {
		return TurnResult{
			Response: fmt.Sprintf(u.pick(respCashInsufficient), formatPrice(total)),
			NextStep: entities.StepCashAmount,
		}
	}

	session.CustomerData.PaymentMethod = entities.PaymentMethodDinheiro
	session.CustomerData.CashAmount = amount
	session.CustomerData.Change = amount - total

	order := u.finalize(session, store)
	detail := fmt.Sprintf("Pagamento em *dinheiro* 💵 — troco de *R$ %s* para R$ %s", formatPrice(order.Change), formatPrice(amount))
	if order.Change == 0 {
		detail = "Pagamento em *dinheiro* 💵 — valor exato, sem troco"
	}
	return TurnResult{
		Response:       u.confirmationMessage(session, store, detail),
		NextStep:       entities.StepCompleted,
		FinalizedOrder: order,
	}
}

func (u *ConversationUseCase) handlePixProof(session *entities.CustomerSession, in Inbound, store entities.StoreConfig) TurnResult {
	if in.ImageURL == "" {
		return TurnResult{Response: u.pick(respPixProofRetry), NextStep: entities.StepWaitingPixProof}
	}

	session.CustomerData.PaymentMethod = entities.PaymentMethodPix
	order := u.finalize(session, store)
	return TurnResult{
		Response:       u.confirmationMessage(session, store, "Comprovante PIX recebido ✅"),
		NextStep:       entities.StepCompleted,
		FinalizedOrder: order,
	}
}

// finalize materializes the FinalizedOrder value from the session. Produced
// exactly once per completed flow; the caller owns persistence.
func (u *ConversationUseCase) finalize(session *entities.CustomerSession, store entities.StoreConfig) *entities.Order {
	data := session.CustomerData
	subtotal, fee, total := orderTotals(session.Cart, store, data.DeliveryType)

	items := make([]entities.OrderItem, 0, len(session.Cart))
	for _, it := range session.Cart {
		items = append(items, entities.OrderItem{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			UnitPrice:   it.Product.Price,
			Quantity:    it.Quantity,
		})
	}

	now := u.now().UTC()
	return &entities.Order{
		ID:            u.newID(),
		CustomerName:  data.Name,
		CustomerPhone: session.Phone,
		Items:         items,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         total,
		Address:       data.Address,
		DeliveryType:  data.DeliveryType,
		PaymentMethod: data.PaymentMethod,
		CashAmount:    data.CashAmount,
		Change:        data.Change,
		Status:        entities.OrderStatusNovo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (u *ConversationUseCase) confirmationMessage(session *entities.CustomerSession, store entities.StoreConfig, paymentDetail string) string {
	var b strings.Builder
	b.WriteString("✅ *Pedido confirmado!*\n\n")
	b.WriteString(formatOrderSummary(session.Cart, store, session.CustomerData.DeliveryType))
	b.WriteString("\n\n")
	b.WriteString(paymentDetail)
	if session.CustomerData.DeliveryType == entities.DeliveryTypeRetirada {
		if store.Address != "" {
			fmt.Fprintf(&b, "\n\nRetirada em: %s", store.Address)
		} else {
			b.WriteString("\n\nSeu pedido ficará pronto para retirada em instantes!")
		}
	}
	b.WriteString("\n\nObrigado pela preferência! 🙌")
	return b.String()
}
