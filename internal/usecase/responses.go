package usecase

import (
	"fmt"
	"strings"
	"time"

	"pedezap/internal/domain/entities"
)

// responseKind tags one conversational situation. Every kind maps to a pool
// of semantically equivalent phrasings; the picked index comes from the
// driver's injected random source, so tests can fix the seed or assert on
// structure instead of exact text.
type responseKind int

const (
	respAskProduct responseKind = iota
	respProductAdded
	respProductsAdded
	respProductNotFound
	respEmptyCartFinalize
	respEmptyCartRemoval
	respNotInCart
	respItemRemoved
	respItemRemovedAll
	respAskDeliveryType
	respDeliveryTypeRetry
	respAskStreet
	respAskNumber
	respAskDistrict
	respAskCity
	respAskReference
	respAskName
	respAskPayment
	respPaymentRetry
	respAskCashAmount
	respCashInsufficient
	respPixProofRetry
)

var responsePools = map[responseKind][]string{
	respAskProduct: {
		"Seu carrinho ainda está vazio! Escolha algo do cardápio 😊",
		"Ainda não temos nada no seu pedido. Dá uma olhada no cardápio!",
		"Pode escolher o que quiser do cardápio, estou esperando seu pedido!",
	},
	respProductAdded: {
		"Boa escolha! Adicionei *%s* ao seu pedido 🎉",
		"Ótimo! *%s* já está no seu carrinho 😋",
		"Perfeito! Coloquei *%s* no seu pedido!",
		"Feito! *%s* adicionado. Quer mais alguma coisa?",
		"*%s* anotado! Deseja pedir mais algo?",
	},
	respProductsAdded: {
		"Anotei tudo! 📝\n%s",
		"Pedido atualizado! 🛒\n%s",
		"Show! Adicionei:\n%s",
	},
	respProductNotFound: {
		"Hmm, não encontrei esse item 😕 Dá uma olhada no cardápio!",
		"Não achei esse produto no cardápio. Pode conferir o nome?",
		"Esse eu não tenho por aqui... Confere o cardápio, por favor!",
		"Desculpa, não reconheci esse item. Digite *cardápio* para ver as opções!",
	},
	respEmptyCartFinalize: {
		"Seu carrinho está vazio! Escolha algo antes de finalizar 😊",
		"Ainda não tem nada no pedido para finalizar. O que vai querer?",
		"Antes de finalizar, escolha pelo menos um item do cardápio!",
	},
	respEmptyCartRemoval: {
		"Seu carrinho já está vazio, não tem nada para remover!",
		"Não há itens no seu pedido para tirar 😅",
		"O carrinho está vazio. Quer adicionar alguma coisa?",
	},
	respNotInCart: {
		"Não encontrei esse item no seu pedido. Seu carrinho:\n%s\nQual deseja remover?",
		"Esse produto não está no carrinho. Você tem:\n%s\nQual quer tirar?",
		"Hmm, esse não está no pedido. Itens atuais:\n%s",
	},
	respItemRemoved: {
		"Removi %d de *%s*. Seu pedido agora:\n%s",
		"Pronto, tirei %d *%s*. Carrinho atualizado:\n%s",
		"Feito! %d *%s* a menos. Ficou assim:\n%s",
	},
	respItemRemovedAll: {
		"Removi *%s* do seu pedido. Carrinho atual:\n%s",
		"Pronto, *%s* saiu do pedido. Ficou assim:\n%s",
		"*%s* removido! Seu carrinho:\n%s",
	},
	respAskDeliveryType: {
		"Como você prefere receber?\n*1* - Entrega 🛵\n*2* - Retirada no balcão 🏪",
		"Vai querer *entrega* (1) ou *retirada* (2)?",
		"Escolha: *1* para entrega ou *2* para retirar na loja!",
	},
	respDeliveryTypeRetry: {
		"Não entendi 😅 Responda *1* para entrega ou *2* para retirada!",
		"Por favor, digite *entrega* (1) ou *retirada* (2).",
		"Opção inválida. *1* = entrega, *2* = retirada 😊",
	},
	respAskStreet: {
		"Qual é o nome da sua rua?",
		"Me diga a rua para a entrega, por favor!",
		"Vamos ao endereço! Qual a rua?",
	},
	respAskNumber: {
		"Qual o número da casa/apartamento?",
		"E o número do endereço?",
		"Anotado! Agora o número, por favor.",
	},
	respAskDistrict: {
		"Qual o bairro?",
		"Em qual bairro você está?",
		"Perfeito. E o bairro?",
	},
	respAskCity: {
		"Qual a cidade?",
		"E a cidade, qual é?",
		"Quase lá! Qual a cidade?",
	},
	respAskReference: {
		"Algum ponto de referência? (pode deixar em branco se não tiver)",
		"Tem algum ponto de referência? Se não, é só mandar qualquer coisa ou deixar vazio!",
		"Último detalhe: ponto de referência? (opcional)",
	},
	respAskName: {
		"Qual o seu nome para o pedido?",
		"Me diga seu nome, por favor!",
		"Em nome de quem fica o pedido?",
	},
	respAskPayment: {
		"Como deseja pagar?\n*1* - PIX 💳\n*2* - Dinheiro 💵\n*3* - Cartão na entrega 💳",
		"Forma de pagamento:\n*1* - PIX\n*2* - Dinheiro\n*3* - Cartão",
		"Para fechar: *pix* (1), *dinheiro* (2) ou *cartão* (3)?",
	},
	respPaymentRetry: {
		"Não entendi 😅 Digite *1* (PIX), *2* (dinheiro) ou *3* (cartão).",
		"Opção inválida. Escolha *pix*, *dinheiro* ou *cartão*!",
		"Por favor, responda 1, 2 ou 3 para a forma de pagamento.",
	},
	respAskCashAmount: {
		"O total deu *R$ %s*. Com quanto você vai pagar? (para calcular o troco)",
		"Total: *R$ %s*. Qual valor em dinheiro? Assim já separo seu troco!",
		"Fechou em *R$ %s*! Me diga a nota para eu calcular o troco.",
	},
	respCashInsufficient: {
		"Esse valor não cobre o total de *R$ %s* 😅 Me diga um valor igual ou maior!",
		"O pedido deu *R$ %s*, preciso de um valor pelo menos igual a isso.",
		"Hmm, falta dinheiro! O total é *R$ %s*. Com quanto vai pagar?",
	},
	respPixProofRetry: {
		"Assim que fizer o PIX, me envie o comprovante (foto) para confirmar! 📸",
		"Estou aguardando o comprovante do PIX. É só mandar a foto!",
		"Para confirmar o pedido, envie a imagem do comprovante do PIX 😊",
	},
}

// pick selects one phrasing of the pool for the given situation.
func (u *ConversationUseCase) pick(kind responseKind) string {
	pool := responsePools[kind]
	return pool[u.rng.Intn(len(pool))]
}

// salutation maps the local hour to a Brazilian greeting.
func salutation(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "Bom dia"
	case h >= 12 && h < 18:
		return "Boa tarde"
	default:
		return "Boa noite"
	}
}

// formatPrice renders a currency value with comma decimal separator.
// Rounding happens only here, at display time.
func formatPrice(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// formatCart renders the cart as a per-line item list.
func formatCart(cart entities.Cart) string {
	if cart.IsEmpty() {
		return "_(vazio)_"
	}
	var b strings.Builder
	for _, it := range cart {
		fmt.Fprintf(&b, "▪ %dx %s — R$ %s\n", it.Quantity, it.Product.Name, formatPrice(it.Product.Price*float64(it.Quantity)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatOrderSummary renders the full pre-payment summary: items, subtotal,
// delivery fee and total.
func formatOrderSummary(cart entities.Cart, store entities.StoreConfig, delivery entities.DeliveryType) string {
	subtotal, fee, total := orderTotals(cart, store, delivery)
	var b strings.Builder
	b.WriteString("📋 *Resumo do pedido:*\n")
	b.WriteString(formatCart(cart))
	fmt.Fprintf(&b, "\n\nSubtotal: R$ %s", formatPrice(subtotal))
	if delivery == entities.DeliveryTypeEntrega {
		fmt.Fprintf(&b, "\nTaxa de entrega: R$ %s", formatPrice(fee))
	}
	fmt.Fprintf(&b, "\n*Total: R$ %s*", formatPrice(total))
	return b.String()
}

func formatPromotions(promos []entities.Promotion) string {
	var active []entities.Promotion
	for _, p := range promos {
		if p.Active {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return "No momento não temos promoções ativas, mas o cardápio está cheio de coisa boa! 😊"
	}
	var b strings.Builder
	b.WriteString("🔥 *Promoções de hoje:*\n")
	for _, p := range active {
		fmt.Fprintf(&b, "▪ %s — R$ %s", p.Title, formatPrice(p.Price))
		if p.Description != "" {
			fmt.Fprintf(&b, " (%s)", p.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nÉ só pedir pelo nome!")
	return b.String()
}
