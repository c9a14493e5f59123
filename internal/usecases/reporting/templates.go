package reporting

import "github.com/vfg2006/sales-agent-api/internal/domain"

// Cabeçalho e seções fixas do relatório diário
const (
	reportHeader = "🧾 RELATÓRIO DIÁRIO DE VENDAS — {{ day_name }}, {{ date }}"

	sectionExecutiveSummary = "📌 **Resumo Executivo**"
	sectionKeyMetrics       = "📊 **Métricas Principais**"
	sectionAlerts           = "⚠️ **Alertas e Riscos**"
	sectionRootCause        = "🧠 **Análise de Causa Raiz**"
	sectionActions          = "🎯 **Ações Recomendadas (Hoje)**"
)

// Métricas principais, independentes do status
var keyMetricsLines = []string{
	"- **Vendas Totais**: {{ total_sales | brl }}",
	"- **Meta do Dia**: {{ total_target | brl }}",
	"- **Diferença vs Meta**: {{ target_gap | signed_percent }}",
	"- **Variação vs Ontem**: {{ delta_yesterday | signed_percent }}",
	"- **Delta Ponderado vs Meta**: {{ weighted_delta | signed_percent }}",
}

// Linhas de alerta, uma por item sinalizado
const (
	criticalIssueLine = "- 🚨 **CRÍTICO**: {{ pair }}: {{ sales | brl }} ({{ delta_target | signed_percent }} vs meta, {{ issue_delta_yesterday | signed_percent }} vs ontem)"
	warningIssueLine  = "- ⚠️ **ALERTA**: {{ pair }} ({{ delta_target | signed_percent }} vs meta)"
	noIssuesLine      = "- ✅ Nenhum problema crítico ou alerta detectado"

	statusFooter = "**Status**: {{ status_icon }} {{ status }}"
)

// Tabela de decisão do Resumo Executivo, chaveada pelo status geral do portfólio
var executiveSummaryLines = map[domain.Severity][]string{
	domain.SeverityCritical: {
		"- Portfólio com desempenho muito abaixo da meta: **{{ achievement | percent }} da meta atingido**",
		"- {{ critical_count }} problema(s) crítico(s) exigem atenção imediata",
		"- Vendas em {{ delta_direction }} de {{ delta_yesterday_abs | percent }} vs ontem",
		"- Intervenção urgente necessária para evitar nova deterioração",
		"- Gerentes regionais devem investigar a causa raiz ainda hoje",
	},
	domain.SeverityWarning: {
		"- Portfólio atingiu **{{ achievement | percent }} da meta** — abaixo do esperado",
		"- {{ warning_count }} sinal(is) de alerta detectado(s), {{ critical_count }} problema(s) crítico(s)",
		"- Vendas em {{ delta_direction }} de {{ delta_yesterday_abs | percent }} vs ontem",
		"- Monitoramento próximo necessário; prepare planos de contingência",
		"- Alguns destaques positivos identificados entre os melhores desempenhos",
	},
	domain.SeverityOK: {
		"- Portfólio com bom desempenho: **{{ achievement | percent }} da meta atingido**",
		"- Todas as regiões e produtos dentro da faixa aceitável",
		"- Vendas em {{ delta_direction }} de {{ delta_yesterday_abs | percent }} vs ontem",
		"- Nenhuma preocupação urgente; mantenha o ritmo atual",
		"- Seguir monitorando tendências emergentes",
	},
}

// Tabela de decisão da Análise de Causa Raiz
var rootCauseLines = map[domain.Severity][]string{
	domain.SeverityCritical: {
		"- Queda acentuada sugere problema operacional (estoque, equipe, sistemas) ou fator externo (concorrência, clima)",
		"- Múltiplos problemas críticos indicam questão sistêmica que requer atenção da liderança",
		"- A análise de padrões indica que não se trata de flutuação normal",
	},
	domain.SeverityWarning: {
		"- A queda de desempenho pode ser temporária, mas a tendência exige acompanhamento",
		"- Algumas combinações região-produto estão abaixo enquanto outras compensam",
		"- Padrões de fim de semana/dia útil podem estar influenciando os resultados",
	},
	domain.SeverityOK: {
		"- Execução forte em todas as regiões e linhas de produto",
		"- Momento de vendas positivo e sustentado",
		"- A estratégia atual está sendo eficaz",
	},
}

// Tabela de decisão das Ações Recomendadas
var recommendedActionLines = map[domain.Severity][]string{
	domain.SeverityCritical: {
		"1. **URGENTE**: Gerentes regionais devem contatar imediatamente as unidades em queda",
		"2. **URGENTE**: Verificar estoque, equipe e funcionamento dos sistemas",
		"3. Escalar para o VP de Vendas se os problemas persistirem até o fim do dia",
		"4. Preparar plano de ação corretiva para amanhã",
		"5. Reavaliar as vendas às 15h para medir a eficácia da intervenção",
	},
	domain.SeverityWarning: {
		"1. Revisar as combinações região-produto sinalizadas em busca de problemas conhecidos",
		"2. Verificar promoções de concorrentes ou mudanças de mercado",
		"3. Preparar contingência caso a tendência continue amanhã",
		"4. Monitorar de perto ao longo do dia",
		"5. Documentar os achados para análise de padrões",
	},
	domain.SeverityOK: {
		"1. Manter a estratégia e a execução de vendas atuais",
		"2. Compartilhar boas práticas dos melhores desempenhos",
		"3. Manter níveis de estoque e equipe",
		"4. Monitorar problemas emergentes",
		"5. Preparar-se para os próximos períodos promocionais",
	},
}

// Ícone do rodapé por status
var statusIcons = map[domain.Severity]string{
	domain.SeverityCritical: "🚨",
	domain.SeverityWarning:  "⚠️",
	domain.SeverityOK:       "✅",
}

// Tradução dos dias da semana para exibição no relatório
var dayNamesPT = map[string]string{
	"Monday":    "segunda-feira",
	"Tuesday":   "terça-feira",
	"Wednesday": "quarta-feira",
	"Thursday":  "quinta-feira",
	"Friday":    "sexta-feira",
	"Saturday":  "sábado",
	"Sunday":    "domingo",
}
