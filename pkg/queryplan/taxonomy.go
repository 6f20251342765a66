package queryplan

// The taxonomies below are fixed configuration: built once, read-only for the
// process lifetime. Ordered slices (not maps) so that classification ties and
// agency inference resolve the same way on every run.

type categoryEntry struct {
	Name     string
	Triggers []string
}

var categoryTaxonomy = []categoryEntry{
	{"교통및물류", []string{"교통", "도로", "지하철", "버스", "물류", "주차", "교통사고", "신호등", "교통안전", "도로안전", "사고예방"}},
	{"공공질서및안전", []string{"안전", "보안", "방범", "치안", "안전사고", "시민안전", "공공안전", "생활안전"}},
	{"문화체육관광", []string{"문화재", "관광", "체육", "문화", "박물관", "공연", "축제", "예술"}},
	{"환경", []string{"환경", "대기", "수질", "폐기물", "오염", "녹지", "생태", "기후"}},
	{"교육", []string{"교육", "학교", "대학", "학습", "도서관", "연구", "학생", "교사"}},
	{"보건", []string{"보건", "병원", "의료", "건강", "질병", "의약", "코로나", "백신"}},
	{"사회복지", []string{"복지", "어린이", "노인", "장애", "저소득", "돌봄", "보육", "복지관"}},
	{"산업·통상·중소기업", []string{"산업", "기업", "창업", "경제", "무역", "중소기업", "공장", "제조업"}},
	{"일반공공행정", []string{"행정", "민원", "공무원", "정책", "규제", "법령", "시청", "구청"}},
	{"재정·세제·금융", []string{"재정", "세금", "금융", "예산", "투자", "경제", "세무", "은행"}},
	{"지역개발", []string{"개발", "도시", "지역", "건설", "인프라", "택지", "재개발", "도시계획"}},
	{"농림", []string{"농업", "임업", "농산물", "산림", "축산", "어업", "농가", "농촌"}},
}

// DefaultCategory is returned when no trigger word matches.
const DefaultCategory = "기타"

// GeneralAdminCategory is treated as "no category filter" by the search layer.
const GeneralAdminCategory = "일반공공행정"

// Domain keyword groups, finer-grained than the category triggers.
var domainPatterns = [][]string{
	{"교통", "교통사고", "교통안전", "도로안전", "사고예방"},
	{"안전", "보안", "방범", "치안", "안전사고"},
	{"프로젝트", "연구", "분석", "조사", "개발"},
	{"시민", "주민", "시민안전", "공공안전", "생활안전"},
	{"환경", "대기질", "수질", "오염", "기후"},
	{"문화", "관광", "축제", "문화재", "박물관"},
	{"복지", "돌봄", "보육", "노인", "장애인"},
	{"공공데이터", "데이터", "정보", "자료"},
}

// Jurisdiction names recognized during keyword extraction.
var regionNames = []string{
	"서울", "부산", "대구", "인천", "광주", "대전", "울산", "세종",
	"경기", "강원", "충북", "충남", "전북", "전남", "경북", "경남", "제주", "서구",
}

type agencyEntry struct {
	Region string
	Agency string
}

// Region to canonical provider agency. 인천/대구 resolve to their 서구 district
// offices because those are the agencies actually present in the catalog.
var agencyTable = []agencyEntry{
	{"인천", "인천광역시서구"},
	{"대구", "대구광역시서구"},
	{"서울", "서울특별시"},
	{"부산", "부산광역시"},
	{"대전", "대전광역시"},
	{"광주", "광주광역시"},
	{"울산", "울산광역시"},
	{"세종", "세종특별자치시"},
	{"경기", "경기도"},
	{"강원", "강원도"},
	{"충북", "충청북도"},
	{"충남", "충청남도"},
	{"전북", "전라북도"},
	{"전남", "전라남도"},
	{"경북", "경상북도"},
	{"경남", "경상남도"},
	{"제주", "제주특별자치도"},
}

// DefaultAgency is returned when no region is named in the prompt.
const DefaultAgency = "기타기관"

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"관련", "대한", "있는", "그", "이", "저", "것", "에", "를", "와", "과", "의", "년",
		"데이터", "정보", "자료", "나는", "내가", "우리", "어떤", "어느", "무엇", "뭐",
		"하기", "위해서", "하려면", "하고있어", "찾고있어", "좋을까", "것이", "것을",
		"현황", "시설", "업체", "목록",
	} {
		stopwords[w] = struct{}{}
	}
}

var dateTerms = []string{
	"최근", "최신", "2023", "2024", "2025", "작년", "올해", "업데이트", "갱신", "신규", "새로운", "최근 몇 년", "최근 몇개월",
}
