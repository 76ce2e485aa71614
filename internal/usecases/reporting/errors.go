package reporting

import "errors"

// ErrNoData indica que o período não tem nenhum registro de métricas
// nem de feedback; não há o que relatar e nenhum registro é gravado.
var ErrNoData = errors.New("nenhum dado disponível no período do relatório")

// ErrCompilationFailed indica que a compilação abortou antes de gravar
// o registro (renderização ou persistência falhou). Nunca deixa
// registro sem artefato para trás.
var ErrCompilationFailed = errors.New("falha na compilação do relatório")
