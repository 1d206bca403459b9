// Package catalog holds the static mapping of topic categories to the
// search queries that populate them. Category order is display priority
// order; query order within a category is execution order.
package catalog

// Category labels. These double as display section titles.
const (
	Releases   = "产品发布/模型更新"
	OpenSource = "开源/工具爆款"
	Funding    = "融资/商业"
	Research   = "研究/论文"
	Policy     = "监管/政策"
	Security   = "安全/事故"
)

// Bucket groups the queries for one category.
type Bucket struct {
	Category string
	Queries  []string
}

// Buckets contains every query bucket, in display priority order.
// Queries prefer Chinese discovery (zh/CN) while keeping a few global
// ones.
var Buckets = []Bucket{
	{
		Category: Releases,
		Queries: []string{
			"大模型 发布 更新 版本",
			"OpenAI 发布 更新 announcement",
			"Claude 发布 更新 Anthropic",
			"Gemini 发布 更新 Google",
			"Meta AI 发布 更新",
			"NVIDIA AI 芯片 发布",
		},
	},
	{
		Category: OpenSource,
		Queries: []string{
			"GitHub Trending AI 开源",
			"Hugging Face trending 模型",
			"开源 AI Agent 框架 发布",
			"RAG 框架 开源 发布",
			"MCP server 开源 发布",
		},
	},
	{
		Category: Funding,
		Queries: []string{
			"AI 融资 种子 轮 A 轮 B 轮",
			"AI 初创 收购 并购",
			"AI 产品 发布 商业化",
		},
	},
	{
		Category: Research,
		Queries: []string{
			"site:arxiv.org 大语言模型 方法",
			"多模态 论文 arXiv",
			"diffusion language model SOAR arXiv",
		},
	},
	{
		Category: Policy,
		Queries: []string{
			"人工智能 监管 政策 最新",
			"欧盟 AI 法案 最新",
			"中国 人工智能 管理 办法",
			"AI 芯片 出口管制 政策",
		},
	},
	{
		Category: Security,
		Queries: []string{
			"大模型 数据泄露 事件",
			"LLM 越狱 漏洞 jailbreak",
			"AI 安全 漏洞 事件",
			"训练数据 泄露 大模型",
		},
	},
}

// Categories returns the category labels in display priority order.
func Categories() []string {
	out := make([]string, len(Buckets))
	for i, b := range Buckets {
		out[i] = b.Category
	}
	return out
}
