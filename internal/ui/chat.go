package ui

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/currhub/currhub/internal/chat"
	"github.com/currhub/currhub/internal/markup"
)

// ChatWidget renders the floating assistant with its transcript. Opening and
// closing the window is purely client side.
func ChatWidget(viewID string, turns []chat.Turn) g.Node {
	return Div(ID("chatWidget"), Class("chat-widget"),
		DataAttr("ws", viewURL("/ws/chat", viewID)),
		Button(ID("chatToggle"), Type("button"), Class("chat-toggle"), Aria("label", "Open assistant"),
			I(Class("fas fa-comments")),
		),
		Div(ID("chatWindow"), Class("chat-window"),
			Div(Class("chat-header"),
				Span(I(Class("fas fa-robot")), g.Text(" CurrBot")),
				Button(ID("chatClose"), Type("button"), Class("chat-close"), Aria("label", "Close assistant"),
					I(Class("fas fa-times")),
				),
			),
			Div(ID("chatMessages"), Class("chat-messages"),
				g.Map(turns, func(t chat.Turn) g.Node { return ChatTurn(viewID, t) }),
			),
			Form(ID("chatForm"), Class("chat-input"),
				g.Attr("hx-post", "/chat"),
				g.Attr("hx-target", "#chatMessages"),
				g.Attr("hx-swap", "beforeend"),
				g.Attr("hx-indicator", "#chatTyping"),
				Textarea(ID("chatInput"), Name("message"), g.Attr("rows", "1"),
					Placeholder("Ask about curricula, courses, credits..."),
				),
				Button(ID("chatSend"), Type("submit"), Aria("label", "Send"),
					I(Class("fas fa-paper-plane")),
				),
			),
			Div(ID("chatTyping"), Class("chat-message bot typing htmx-indicator"), typingDots()),
		),
	)
}

// ChatTurn renders one transcript turn. Bot turns carry their literal text for
// copying and a download link.
func ChatTurn(viewID string, t chat.Turn) g.Node {
	switch {
	case t.Typing:
		return Div(ID(t.ID), Class("chat-message bot typing"), typingDots())

	case t.Sender == chat.SenderUser:
		return Div(ID(t.ID), Class("chat-message user"),
			Div(Class("message-content"), g.Text(t.Text)),
		)

	default:
		download := viewURL("/chat/turns/"+url.PathEscape(t.ID)+"/download", viewID)
		return Div(ID(t.ID), Class("chat-message bot"),
			Div(Class("message-content"), g.Raw(markup.Chat(t.Text))),
			Div(Class("message-actions"),
				Button(Type("button"), Class("action-btn copy-btn"), TitleAttr("Copy"), DataAttr("copy", t.Text),
					I(Class("fas fa-copy")),
				),
				A(Href(download), Class("action-btn download-btn"), TitleAttr("Download"),
					I(Class("fas fa-download")),
				),
			),
		)
	}
}

func typingDots() g.Node {
	return Div(Class("typing-indicator"), Span(), Span(), Span())
}
