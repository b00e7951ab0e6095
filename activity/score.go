package activity

// 隐式评分参数。分数不是显式评分，而是从曝光/跳转行为推导出的相关性权重。
const (
	// maxCountedActivity 单个 (user, job) 组合上计入评分的行为次数上限。
	// 限制单一组合的影响力，抑制重复曝光噪声。
	maxCountedActivity = 10

	// redirectWeight 跳转（点击进入申请页）的单位权重是曝光的两倍：意图信号更强。
	redirectWeight = 2
)

// ImplicitScore 将 (曝光数, 跳转数) 映射为隐式相关性分数。
//
// 算法：
//  1. 两个计数都裁剪到 10
//  2. 跳转数 ×2（跳转权重更高）
//  3. 过曝惩罚 = max(0, 裁剪曝光 - 裁剪跳转)：多次展示却无跳转是负向信号
//  4. 分数 = 加权跳转 + 裁剪曝光 - 过曝惩罚
//  5. 下限修正：有任何跳转时分数至少为 2；有任何曝光时分数至少为 1
//
// 代数性质：曝光 >= 跳转时分数退化为 3×裁剪跳转（平台效应，跳转数主导）；
// 曝光 < 跳转时分数为 2×裁剪跳转 + 裁剪曝光。
// 曝光与跳转都为 0 时返回 0，该组合由上游丢弃，不会产生三元组。
func ImplicitScore(impressions, redirects int) int {
	if impressions < 0 {
		impressions = 0
	}
	if redirects < 0 {
		redirects = 0
	}

	clippedImpressions := impressions
	if clippedImpressions > maxCountedActivity {
		clippedImpressions = maxCountedActivity
	}
	clippedRedirects := redirects
	if clippedRedirects > maxCountedActivity {
		clippedRedirects = maxCountedActivity
	}

	scaledRedirects := clippedRedirects * redirectWeight

	overexposurePenalty := clippedImpressions - clippedRedirects
	if overexposurePenalty < 0 {
		overexposurePenalty = 0
	}

	score := scaledRedirects + clippedImpressions - overexposurePenalty

	if score < 2 && redirects > 0 {
		score = 2
	}
	if score < 1 && impressions > 0 {
		score = 1
	}
	return score
}
