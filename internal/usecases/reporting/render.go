package reporting

import (
	"fmt"

	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

const reportDateLayout = "2006年01月02日"

// O texto é colado em mensagens do hospital; pontuação e quebras de linha precisam ser exatas
const reportTemplate = "%s至%s影像科工作量：\n" +
	"CT：%d人，%d部位\n" +
	"DR：%d人，%d部位\n" +
	"\n" +
	"查体：\n" +
	"透视：%d部位\n" +
	"拍片: %d部位\n" +
	"CT: %d部位"

// RenderReport monta o texto do relatório com os totais do período
func RenderReport(totals domain.Totals, window domain.ReportWindow) string {
	return fmt.Sprintf(reportTemplate,
		window.Start.Format(reportDateLayout),
		window.End.Format(reportDateLayout),
		totals.RoutineCTPatients, totals.RoutineCTSites,
		totals.RoutineDRPatients, totals.RoutineDRSites,
		totals.ExamFluoroscopySites,
		totals.ExamDRSites,
		totals.ExamCTSites,
	)
}

// EmptyWindowMessage é exibido quando nenhum registro cai no período
func EmptyWindowMessage(window domain.ReportWindow) string {
	return fmt.Sprintf("周期 %s ~ %s 暂无数据录入",
		window.Start.Format("2006-01-02"),
		window.End.Format("2006-01-02"),
	)
}
