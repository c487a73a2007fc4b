package enneabot

import "strings"

// Script holds every static reply the quiz sends. The text is configuration
// data, not logic; DefaultScript returns the stock Korean questionnaire.
type Script struct {
	Menu    string
	AskName string
	Q11     string
	Q12     string
	Q21     string

	// Q3 is shown as Q3Question followed by the nine ranked options.
	Q3Question string
	Q3Options  []string

	Save string

	NotReady    string
	Q3Retry     string
	WingRetry   string
	LookupMiss  string
	ListHeader  string
	ListError   string
	NoResults   string
	SaveError   string
	Saved       string
	SaveSkipped string
}

// Q3Full returns the Q3 question followed by all nine options.
func (s *Script) Q3Full() string {
	return s.Q3Question + "\n\n" + strings.Join(s.Q3Options, "\n\n")
}

// DefaultScript returns the stock questionnaire text.
func DefaultScript() *Script {
	return &Script{
		Menu:    "1️⃣ 지금까지 결과 보기\n2️⃣ 테스트하기\n\n원하는 번호를 선택하세요!",
		AskName: "이름을 입력해주세요 🙂",
		Q11:     "Q1-1. 집단에서 관계를 맺을 때 나는…\n1. 규칙과 질서를 중시하며 상대가 기대하는 역할을 수행하려고 한다.\n2. 자신감 있게 주도하고, 필요한 경우 솔직하게 의견을 말하려고 한다.\n3. 타인의 감정과 분위기에 민감하여 상황을 조율하려고 한다.",
		Q12:     "Q1-2. 사람들과 함께 있을 때 나는…\n1. 신뢰와 안정감을 중요하게 여기며, 일관성을 유지하려고 한다.\n2. 자신이 중심이 되어 일을 이끌거나 새로운 기회를 찾으려 한다.\n3. 주변 사람의 마음과 필요를 읽고 조화를 맞추려고 한다.",
		Q21:     "Q2-1. 일이 계획대로 되지 않을 때 나는…\n1. “그래도 괜찮아, 이 상황에서도 배울 점이 있어”라고 스스로를 다독하며 마음을 편하게 한다.\n2. “문제를 차근차근 해결해야 해”라며 감정을 잠시 억누르고 계획을 세운다.\n3. “왜 이렇게 일이 꼬이지?”라며 순간적으로 답답함, 화, 불안 등을 깊이 느끼고 마음속으로 곱씹는다.",

		Q3Question: "Q3. 아래 상황에서 나의 모습과 가장 가까운 선택지를 순서대로 3개 고르세요.\n(예: 1 5 9)",
		Q3Options: []string{
			"1️⃣\n완벽을 추구하고 옳고 그름에 민감한 특징의 사람입니다.\n스트레스 상황에서는 내적 불안과 자기 비판이 강해지고 감정이 격화합니다.\n안정적일 때는 활기차고 즐거움을 추구하며 융통성을 발휘합니다.",
			"2️⃣\n타인을 돕고 인정받기를 중시하며 관계 중심적인 특징의 사람입니다.\n스트레스 상황에서는 통제적이고 공격적이며 과도한 행동이 나타납니다.\n안정적일 때는 감정을 이해하며 관계를 세심하게 살핍니다.",
			"3️⃣\n목표 지향적이고 효율성을 중시하는 특징의 사람입니다.\n스트레스 상황에서는 갈등을 회피하고 우유부단하며 조화를 지나치게 추구합니다.\n안정적일 때는 계획적이고 신중하며 팀과 협력하려는 모습이 나타납니다.",
			"4️⃣\n감정과 개성을 중요시하며 독창적인 특징의 사람입니다.\n스트레스 상황에서는 감정에 몰입하고 자기 표현이 과도해집니다.\n안정적일 때는 질서 있게 행동하고 내적 규범을 지키며 창의성을 발휘합니다.",
			"5️⃣\n분석적이고 정보 수집을 중시하며 지적 호기심이 강한 특징의 사람입니다.\n스트레스 상황에서는 회피적이고 고립되며 관찰에 치중합니다.\n안정적일 때는 계획적이고 효율적으로 문제를 분석합니다.",
			"6️⃣\n충성심이 강하고 신뢰와 안전을 중시하는 특징의 사람입니다.\n스트레스 상황에서는 과도하게 불안해하며 의심과 걱정이 커지고, 반복적으로 확인하거나 안전을 점검하려는 행동이 나타납니다.\n안정적일 때는 평화롭고 조화롭게 상황을 조율합니다.",
			"7️⃣\n활기차고 낙천적이며 새로운 경험과 가능성을 추구하는 특징의 사람입니다.\n스트레스 상황에서는 충동적이고 산만하며 계획을 무시하는 경향이 나타납니다.\n안정적일 때는 차분하게 분석하고 효율적으로 문제를 해결합니다.",
			"8️⃣\n강력한 통제력과 리더십을 발휘하며 주도적인 특징의 사람입니다.\n스트레스 상황에서는 지나치게 고립되고 과도하게 분석적으로 행동합니다.\n안정적일 때는 단호하게 행동하면서도 타인을 돕고 관계를 조율합니다.",
			"9️⃣\n평화롭고 온화하며 조화를 중시하고 상황을 수용하는 특징의 사람입니다.\n스트레스 상황에서는 갈등이나 요구 앞에서 과도하게 소극적이고 회피하며, 자신의 의견을 내지 못하는 모습이 나타납니다.\n안정적일 때는 목표 달성 의식과 효율적 행동을 보입니다.",
		},

		Save: "결과를 저장하시겠습니까?\n1) 저장하기\n2) 저장 안 하기",

		NotReady:    "⏳ 데이터 로드 중입니다. 잠시 후 다시 시도해주세요.",
		Q3Retry:     "3개 숫자를 순서대로 입력해주세요. (예: 1 5 9)",
		WingRetry:   "1 또는 2로 선택해주세요.",
		LookupMiss:  "❌ 조합을 찾을 수 없습니다. 다시 시도해주세요.",
		ListHeader:  "📊 지금까지 결과:",
		ListError:   "❌ DB 조회 오류",
		NoResults:   "아직 저장된 결과가 없습니다.",
		SaveError:   "❌ DB 저장 오류",
		Saved:       "✅ 저장되었습니다!",
		SaveSkipped: "저장을 건너뛰었습니다.",
	}
}
