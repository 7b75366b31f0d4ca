package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, ReportTitleKey, "Lotofácil: %d jogos de %d dezenas")
	message.SetString(lang, ReportSeedKey, "Semente %s (%s, %s)")
	message.SetString(lang, ReportAveragesKey, "Médias: Pares %.1f | Ímpares %.1f | Fibonacci %.1f | Moldura %.1f")
	message.SetString(lang, ReportTicketKey, "Jogo #%d (soma %d)")
	message.SetString(lang, ReportTicketStatKey, "%d pares | %d ímpares | %d Fibonacci | %d moldura")
	message.SetString(lang, ReportLegendKey, "Legenda: * Fibonacci, # moldura")
	message.SetString(lang, EvaluationKey, "Jogo aprovado pelos critérios estatísticos")
	message.SetString(lang, EvaluationRejectKey, "Jogo reprovado: %s")

	message.SetString(lang, ErrorTicketSizeKey, "O jogo deve ter entre 15 e 20 dezenas (recebido: %s)")
	message.SetString(lang, ErrorTicketNumbersKey, "As dezenas devem ser distintas e estar entre 1 e 25 (%s)")
	message.SetString(lang, ErrorSeedRangeKey, "A semente deve estar entre 0 e 9223372036854775807")
	message.SetString(lang, ErrorSeedRequiredKey, "O modo REPLAY exige uma semente")
	message.SetString(lang, ErrorRollModeKey, "Modo inválido: use LIVE ou REPLAY (%s)")
	message.SetString(lang, ErrorUnknownKey, "Ocorreu um erro inesperado")
}
