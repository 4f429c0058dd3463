package similarity

// maxLCSTokens bounds the LCS table on long inputs.
const maxLCSTokens = 100

// lcsLength returns the length of the longest common subsequence of a and b.
// When either side exceeds maxLCSTokens both are truncated and the rolling
// two-row form is used.
func lcsLength(a, b []string) int {
	if len(a) > maxLCSTokens || len(b) > maxLCSTokens {
		return lcsRolling(truncate(a, maxLCSTokens), truncate(b, maxLCSTokens))
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}
	return dp[len(a)][len(b)]
}

func lcsRolling(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func truncate(tokens []string, n int) []string {
	if len(tokens) > n {
		return tokens[:n]
	}
	return tokens
}

// lcsRatio normalizes the LCS length by the longer untruncated sequence.
func lcsRatio(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return float64(lcsLength(a, b)) / float64(max(len(a), len(b)))
}
