package seeds

// SeedQuote is one row of the built-in quote table.
type SeedQuote struct {
	Text             string
	Category         string
	Tags             []string
	IsPersonalizable bool
}

// QuoteSeeds returns the built-in catalog loaded on every start.
// Texts flagged IsPersonalizable carry one or more of the tokens
// {name}, {goal}, {days_left}.
func QuoteSeeds() []SeedQuote {
	return []SeedQuote{
		// 집중 (focus)
		{Text: "완벽 대신 시작.", Category: "focus", Tags: []string{"시작", "완벽주의"}},
		{Text: "5분만 하면, 25분이 따라온다.", Category: "focus", Tags: []string{"포모도로", "시간관리"}},
		{Text: "의지가 약하면 루틴이 지켜준다.", Category: "focus", Tags: []string{"루틴", "의지"}},
		{Text: "앉는 순간 절반은 성공.", Category: "focus", Tags: []string{"시작", "성공"}},
		{Text: "지금 단 한 장이 내일의 자신감.", Category: "focus", Tags: []string{"자신감", "꾸준함"}},
		{Text: "작게 시작해, 크게 쌓아.", Category: "focus", Tags: []string{"시작", "성장"}},
		{Text: "{name}, 지금 10분만 시작해. 시작이 {goal}의 절반이야.", Category: "focus", Tags: []string{"개인화", "시작"}, IsPersonalizable: true},

		// 동기 (motivation)
		{Text: "오늘의 1%가 100일 뒤의 나를 바꾼다.", Category: "motivation", Tags: []string{"성장", "변화"}},
		{Text: "미래의 나는 오늘의 나에게 감사할 거야.", Category: "motivation", Tags: []string{"미래", "감사"}},
		{Text: "천천히 가도 멈추지 않으면 도착한다.", Category: "motivation", Tags: []string{"꾸준함", "인내"}},
		{Text: "방향이 맞다면 느려도 걱정 없다.", Category: "motivation", Tags: []string{"방향", "확신"}},
		{Text: "목표는 멀리, 발걸음은 가까이.", Category: "motivation", Tags: []string{"목표", "실행"}},
		{Text: "꿈은 기록할 때 계획이 된다.", Category: "motivation", Tags: []string{"꿈", "계획"}},

		// 시험 (exam)
		{Text: "D-{days_left}: 한 문제 더 = 등급 한 칸.", Category: "exam", Tags: []string{"시험", "디데이"}, IsPersonalizable: true},
		{Text: "지금 한 회독이 시험장에서 안정감이 된다.", Category: "exam", Tags: []string{"회독", "안정감"}},
		{Text: "시험은 요행이 아니라 준비의 총합.", Category: "exam", Tags: []string{"준비", "노력"}},
		{Text: "모르는 건 두려움, 알게 되면 도구.", Category: "exam", Tags: []string{"지식", "두려움"}},
		{Text: "마지막 1주: 틈새 복습이 점수를 만든다.", Category: "exam", Tags: []string{"복습", "점수"}},
		{Text: "정답률은 운이 아니라 습관의 통계.", Category: "exam", Tags: []string{"습관", "정답률"}},

		// 슬럼프 (slump)
		{Text: "무너지는 건 순간, 일어서는 건 선택.", Category: "slump", Tags: []string{"극복", "선택"}},
		{Text: "실수는 정지선이 아니라 이정표.", Category: "slump", Tags: []string{"실수", "성장"}},
		{Text: "오늘 흔들려도 내일은 단단해진다.", Category: "slump", Tags: []string{"회복", "강함"}},
		{Text: "포기는 아웃, 휴식은 타임아웃.", Category: "slump", Tags: []string{"포기", "휴식"}},
		{Text: "넘어졌다면 데이터를 챙겨라: 왜, 언제, 어떻게.", Category: "slump", Tags: []string{"분석", "학습"}},
		{Text: "힘들수록 기본기로 돌아가.", Category: "slump", Tags: []string{"기본기", "원리"}},
		{Text: "지금 포기하면 어제의 노력이 울어. {name}, 5문제만 더.", Category: "slump", Tags: []string{"개인화", "포기"}, IsPersonalizable: true},

		// 루틴 (routine)
		{Text: "할 일을 시간에 넣어라. 시간이 일을 지켜준다.", Category: "routine", Tags: []string{"시간관리", "계획"}},
		{Text: "캘린더에 없으면, 세상에도 없다.", Category: "routine", Tags: []string{"계획", "실행"}},
		{Text: "집중 25, 휴식 5—리듬이 실력.", Category: "routine", Tags: []string{"포모도로", "리듬"}},
		{Text: "아침 1시간은 저녁 2시간의 가치.", Category: "routine", Tags: []string{"아침", "효율"}},
		{Text: "작업을 쪼개면 부담도 쪼개진다.", Category: "routine", Tags: []string{"분할", "관리"}},
		{Text: "끝낼 수 없다면, 시작 시간을 정하라.", Category: "routine", Tags: []string{"시작", "시간"}},

		// 성장 (growth)
		{Text: "나는 '못해'가 아니라 '아직'이야.", Category: "growth", Tags: []string{"성장마인드", "가능성"}},
		{Text: "실력은 반복의 별명.", Category: "growth", Tags: []string{"반복", "실력"}},
		{Text: "비교는 잠깐, 기록은 평생의 증거.", Category: "growth", Tags: []string{"기록", "비교"}},
		{Text: "동기부여는 오프닝, 습관이 메인 스토리.", Category: "growth", Tags: []string{"습관", "동기"}},
		{Text: "오늘의 나와 경쟁하라.", Category: "growth", Tags: []string{"자기계발", "경쟁"}},
		{Text: "꾸준함은 재능을 이긴다.", Category: "growth", Tags: []string{"꾸준함", "재능"}},
	}
}
