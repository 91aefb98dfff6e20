package catalog

import "strings"

// MaxSuggestions caps the autocomplete result size
const MaxSuggestions = 5

// IssueItem is one piece of room equipment together with its known problem
// phrases
type IssueItem struct {
	Name     string
	Problems []string
}

// IssueCategory groups related items. Categories, items, and problems keep a
// fixed order so the flattened issue list is stable across calls.
type IssueCategory struct {
	Name  string
	Items []IssueItem
}

var issueCategories = []IssueCategory{
	{
		Name: "Electrónica y Tecnología",
		Items: []IssueItem{
			{Name: "Televisor", Problems: []string{"Pantalla (píxeles muertos, golpes)", "Mando a distancia (botones, pilas)", "Soporte de pared"}},
			{Name: "Aire acondicionado / Termostato", Problems: []string{"Filtros sucios (mal olor)", "Fugas de agua", "Mando sin pilas", "Sensor de temperatura"}},
			{Name: "Secador de pelo", Problems: []string{"Sobrecalentamiento", "Enganche roto", "Cable pelado"}},
			{Name: "Caja fuerte", Problems: []string{"Batería agotada", "Teclado numérico falla", "Mecanismo atascado"}},
			{Name: "Teléfono", Problems: []string{"Auricular cable cortado", "Teclas no responden", "Interferencias"}},
			{Name: "Despertador / Altavoz", Problems: []string{"Pantalla fundida", "Altavoz roto", "Puerto de carga dañado"}},
			{Name: "Lámparas", Problems: []string{"Bombilla fundida", "Interruptor roto", "Cable pelado", "Pantalla abollada/rota"}},
			{Name: "Enchufes y USB", Problems: []string{"Enchufes sueltos", "USB no carga", "Tapas rotas"}},
		},
	},
	{
		Name: "Fontanería y Baño",
		Items: []IssueItem{
			{Name: "Inodoro / WC / Váter", Problems: []string{"Pérdida de agua", "Botón roto/atascado", "Tapa agrietada/suelta", "Atascos"}},
			{Name: "Ducha / Bañera", Problems: []string{"Cabezal obstruido/roto", "Manguera gotea", "Mampara rota/descarrilada", "Silicona mal estado", "Desagüe lento"}},
			{Name: "Lavabo", Problems: []string{"Grifo gotea/poca presión", "Desagüe lento/atascado", "Sifón con fuga", "Pedestal roto"}},
			{Name: "Accesorios", Problems: []string{"Toallero suelto", "Jaboneras rotas", "Porta-rollos desprendido"}},
		},
	},
	{
		Name: "Mobiliario",
		Items: []IssueItem{
			{Name: "Camas", Problems: []string{"Somier roto/cruje", "Patas flojas/rotas", "Cabecero despegado"}},
			{Name: "Colchones y Almohadas", Problems: []string{"Hundimientos", "Manchas", "Quemaduras", "Pérdida de forma"}},
			{Name: "Armario", Problems: []string{"Puertas descuadradas", "Cajones no corren", "Barras rotas", "Perchas rotas"}},
			{Name: "Escritorio / Mesa", Problems: []string{"Patas cojas", "Superficie rayada/quemada", "Tiradores rotos"}},
			{Name: "Sillas y Butacas", Problems: []string{"Patas flojas", "Tapicería rota/manchada", "Respaldo suelto", "Ruedas rotas"}},
			{Name: "Mesillas de noche", Problems: []string{"Cajones rotos", "Superficie dañada", "Lámpara fundida"}},
			{Name: "Equipaje", Problems: []string{"Bisagras rotas", "Tapa no se sostiene"}},
		},
	},
	{
		Name: "Estructura y Acabados",
		Items: []IssueItem{
			{Name: "Ventanas / Puertas", Problems: []string{"Manivelas rotas/flojas", "Cierre no ajusta", "Guías descarriladas", "Cristales rotos"}},
			{Name: "Cortinas y Estores", Problems: []string{"Anillas rotas", "Cadena/tirador roto", "Tela desgarrada/descolgada"}},
			{Name: "Puerta de entrada", Problems: []string{"Cerradura (pilas)", "Mirilla tapada", "Cadena rota", "Bisagras chirrían"}},
			{Name: "Paredes", Problems: []string{"Golpes", "Desconchones", "Humedades"}},
			{Name: "Suelo", Problems: []string{"Baldosas rotas", "Tarima levantada/rayada", "Rodapiés despegados"}},
			{Name: "Techos", Problems: []string{"Filtraciones (manchas)", "Lámparas fundidas/rotas"}},
		},
	},
	{
		Name: "Otros Elementos",
		Items: []IssueItem{
			{Name: "Pomos y Tiradores", Problems: []string{"Flojos o salidos"}},
			{Name: "Interruptores", Problems: []string{"No encienden", "Flojos", "Tapa rota"}},
			{Name: "Espejos", Problems: []string{"Roturas", "Azogado (manchas)", "Soportes sueltos"}},
			{Name: "Puntos de Recarga", Problems: []string{"USB-C pared roto/obsoleto"}},
			{Name: "Portero / Videoportero", Problems: []string{"Pantalla rota", "Audio no funciona"}},
			{Name: "Minibar", Problems: []string{"Puerta no cierra", "Motor ruidoso", "Estantes rotos"}},
		},
	},
}

// AllIssues flattens the taxonomy into "<item>: <problem>" strings,
// preserving category order, then item order, then problem order
func AllIssues() []string {
	var issues []string
	for _, category := range issueCategories {
		for _, item := range category.Items {
			for _, problem := range item.Problems {
				issues = append(issues, item.Name+": "+problem)
			}
		}
	}
	return issues
}

// Suggest returns up to MaxSuggestions issues whose "<item>: <problem>"
// string contains the query, case-insensitively, in catalog order. A blank
// query yields no suggestions.
func Suggest(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []string
	for _, issue := range AllIssues() {
		if strings.Contains(strings.ToLower(issue), query) {
			matches = append(matches, issue)
			if len(matches) == MaxSuggestions {
				break
			}
		}
	}
	return matches
}
