package bot

import (
	"fmt"
	"strings"

	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
	"github.com/smallbiznis/leadflow/internal/observability/metrics"
)

const (
	generatingLeadsText = "🔍 Generating leads..."
	leadsFailedText     = "❌ Error generating leads. Please try again."
)

func welcomeText(appURL string) string {
	return `🚀 Welcome to Lead Generation Bot!

Available commands:
/generate_leads - Generate new leads
/send_message - Send cold messages
/chat - Start AI conversation
/create_invoice - Generate invoice
/stats - View statistics
/help - Show all commands

💡 Use the web dashboard at ` + appURL + ` for full functionality!`
}

const helpText = `📋 Available Commands:

/start - Welcome message
/generate_leads - Generate new leads from social media
/send_message - Send personalized cold messages
/chat - Start AI-powered conversation
/create_invoice - Generate and send invoices
/stats - View lead generation statistics
/help - Show this help message

💡 Tip: Use the web dashboard for advanced features!`

const chatModeText = `💬 AI Chat Mode Activated!

Send me any message and I'll respond as your AI assistant.

To exit chat mode, send /help or visit the web dashboard for advanced conversations.`

func invoiceText(appURL string) string {
	return `📄 Invoice Creation

For detailed invoice creation with custom items and automatic PDF generation, please visit:

🔗 ` + appURL + `/invoices

You can create professional invoices and send them directly to clients!`
}

func fallbackText(appURL string) string {
	return `🤖 AI Response: Thank you for your message!

For advanced AI conversations and lead management, please visit our web dashboard:
🔗 ` + appURL + `

Use /help to see available commands.`
}

func statsText(stats metrics.Stats, appURL string) string {
	return fmt.Sprintf(`📈 Lead Generation Statistics:

📊 Total Leads: %d
💬 Messages Sent: %d
📄 Invoices Sent: %d
📈 Conversion Rate: %.1f%%

🔗 View detailed analytics at %s`,
		stats.LeadsGenerated,
		stats.MessagesSent,
		stats.InvoicesSent,
		stats.ConversionRate(),
		appURL,
	)
}

func leadsText(leads []leaddomain.Lead) string {
	var b strings.Builder
	b.WriteString("📊 Generated Leads:\n\n")
	for i, lead := range leads {
		fmt.Fprintf(&b, "%d. %s\n", i+1, lead.Name)
		fmt.Fprintf(&b, "   Company: %s\n", lead.Company)
		fmt.Fprintf(&b, "   Position: %s\n", lead.Position)
		fmt.Fprintf(&b, "   Platform: %s\n\n", lead.Platform)
	}
	return strings.TrimRight(b.String(), "\n")
}

func aiReplyText(reply string) string {
	return "🤖 " + reply
}
